package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func Document(raw RawRecord, lookup EmployeeLookup) models.Document {
	uploadedBy := raw.Ref(
		[]string{"uploaded_by_id", "uploaded_by", "uploader.id"},
		[]string{"uploaded_by_name", "uploader.full_name", "uploader.name"},
	)
	uploadedBy = resolveEmployeeRef(uploadedBy, lookup)

	return models.Document{
		CommonFields: reconcileCommon(raw),
		Name:         raw.String("name", "file_name", "document_name"),
		FileURL:      raw.String("file_url", "document_url", "url"),
		ThumbnailURL: raw.String("thumbnail_url"),
		MimeType:     raw.String("mime_type", "content_type"),
		Size:         raw.Int64("size", "file_size"),
		Project: raw.Ref(
			[]string{"project_id", "project.id"},
			[]string{"project_name", "project.name"},
		),
		UploadedBy: uploadedBy,
	}
}

func Documents(raws []RawRecord, lookup EmployeeLookup) []models.Document {
	out := make([]models.Document, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("document", raw)
		out = append(out, Document(raw, lookup))
	}
	return out
}
