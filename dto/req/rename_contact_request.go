package req

type RenameContactRequest struct {
	ContactID string `json:"contactId" validate:"required"`
	Nickname  string `json:"nickname" validate:"required,min=1,max=100"`
}
