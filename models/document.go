package models

// Document is a file attached to a project. The file itself lives behind
// the upstream boundary; this layer only forwards multipart uploads.
type Document struct {
	CommonFields
	Name         string `json:"name"`
	FileURL      string `json:"fileUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Project      Ref    `json:"project"`
	UploadedBy   Ref    `json:"uploadedBy"`
}

type DocumentPayload struct {
	Name      string `json:"name" validate:"required"`
	ProjectId string `json:"project_id" validate:"required"`
}

func (d Document) ToPayload() DocumentPayload {
	return DocumentPayload{
		Name:      d.Name,
		ProjectId: d.Project.Id,
	}
}
