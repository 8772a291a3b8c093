package dto

// SetSettingRequest stores one key/value pair.
type SetSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingResponse returns one stored key/value pair.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
