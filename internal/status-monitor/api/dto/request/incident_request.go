package request

type CreateIncidentRequest struct {
	Title            string   `json:"title" binding:"required,max=200"`
	Description      string   `json:"description" binding:"required"`
	Impact           string   `json:"impact" binding:"required,oneof=minor major critical"`
	AffectedServices []string `json:"affectedServices" binding:"omitempty,dive,required"`
}

type UpdateIncidentRequest struct {
	Message string `json:"message" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=investigating identified monitoring resolved"`
}
