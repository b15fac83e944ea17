package dto

type SubscribeRequest struct {
	UserID    uint64 `json:"user_id" binding:"required,gt=0"`
	Frequency string `json:"frequency" binding:"required,oneof=daily weekly monthly"`
}

type UnsubscribeRequest struct {
	UserID uint64 `json:"user_id" binding:"required,gt=0"`
}
