package favorite

type AddFavoriteRequest struct {
	DestinationID int64 `json:"destination_id" binding:"required"`
}
