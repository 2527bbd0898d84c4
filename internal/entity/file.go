package entity

const (
	FileCategoryResume      = "resume"
	FileCategoryIDProof     = "id-proof"
	FileCategoryCertificate = "certificate"
	FileCategoryContract    = "contract"
	FileCategoryOther       = "other"
)

type UploadedFile struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       string `json:"size"`
	Category   string `json:"category"`
	UploadedOn string `json:"uploadedOn"`
	DataURL    string `json:"dataUrl,omitempty"`
}
