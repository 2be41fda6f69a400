package dto

// CreateReportRequest 举报表单。details 为旧前端字段名
type CreateReportRequest struct {
	ArtworkID     string `json:"artwork_id"`
	ArtworkTitle  string `json:"artwork_title"`
	Reason        string `json:"reason"`
	Detail        string `json:"detail"`
	Details       string `json:"details"`
	Email         string `json:"email"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type CloseReportRequest struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
}
