package model

// TransferResult carries the post-transfer snapshots of both accounts. It is
// only ever produced whole: a failed transfer yields an error and no result,
// never a partially populated one.
type TransferResult struct {
	Sender   *Account `json:"senderAccount"`
	Receiver *Account `json:"receiverAccount"`
}
