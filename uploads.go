package main

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/dispatch"
	"bitbucket.org/mmdatafocus/console_backend/handlers"
	"bitbucket.org/mmdatafocus/console_backend/middlewares"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/upstream"
)

const maxUploadSizeBytes int64 = 5 * 1024 * 1024

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var attachmentMimeTypes = map[string]bool{
	"application/pdf":          true,
	"application/msword":       true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	"image/jpeg": true,
	"image/png":  true,
}

const thumbnailEdge = 200

// uploadHandler forwards a document upload to the upstream boundary as
// multipart parts: the file blob, its metadata fields, and for images a
// generated thumbnail as an extra part.
func uploadHandler(env *handlers.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		ctx := c.Request.Context()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
			return
		}
		if fileHeader.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if !attachmentMimeTypes[mimeType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
			return
		}

		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			name = filepath.Base(fileHeader.Filename)
		}
		projectId := strings.TrimSpace(c.PostForm("project_id"))
		if projectId == "" {
			c.JSON(http.StatusUnprocessableEntity, dispatch.Result{
				FieldErrors: map[string]string{"ProjectId": "required"},
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
			return
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
			return
		}

		files := []upstream.FilePart{{
			FieldName: "file",
			FileName:  fileHeader.Filename,
			Content:   content,
		}}

		if imageMimeTypes[mimeType] {
			if thumb, err := makeThumbnail(content); err == nil {
				files = append(files, upstream.FilePart{
					FieldName: "thumbnail",
					FileName:  "thumb_" + fileHeader.Filename + ".png",
					Content:   thumb,
				})
			} else {
				config.LogError(logger, "uploads", "uploadHandler", "thumbnail", nil, err)
			}
		}

		fields := map[string]string{
			"name":       name,
			"project_id": projectId,
			"mime_type":  mimeType,
		}
		raw, err := env.Client.UploadMultipart(ctx, "documents", fields, files)
		if err != nil {
			config.LogError(logger, "uploads", "uploadHandler", "forward", nil, err)
			c.JSON(http.StatusBadGateway, gin.H{
				"ok": false,
				"notification": dispatch.Notification{
					Level:   dispatch.LevelError,
					Message: "Uploading the document failed",
				},
			})
			return
		}

		document := normalize.Document(raw, middlewares.EmployeeLookupFor(ctx))
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"result": document,
			"notification": dispatch.Notification{
				Level:   dispatch.LevelSuccess,
				Message: "Document uploaded",
			},
		})
	}
}

func makeThumbnail(content []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Thumbnail(img, thumbnailEdge, thumbnailEdge, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
