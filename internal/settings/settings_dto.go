package settings

type UpdateSettingsRequest struct {
	Values map[string]string `json:"values" binding:"required,min=1"`
}
