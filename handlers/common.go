package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/casbinAuthorization"
	"eventsphere_backend/domain"
)

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(object); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func jsonError(writer http.ResponseWriter, message string, statusCode int) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	if err := json.NewEncoder(writer).Encode(map[string]string{"error": message}); err != nil {
		log.Println("Error encoding error response:", err)
	}
}

// currentUserID resolves the authenticated caller's id from the request
// context populated by the authorization middleware.
func currentUserID(req *http.Request) (primitive.ObjectID, bool) {
	user, ok := casbinAuthorization.CurrentUserFromContext(req.Context())
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(user.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// readFormFiles reads up to limit files uploaded under the given multipart
// field name.
func readFormFiles(req *http.Request, field string, limit int) ([]domain.FileUpload, error) {
	if req.MultipartForm == nil || req.MultipartForm.File == nil {
		return nil, nil
	}

	headers := req.MultipartForm.File[field]
	if len(headers) > limit {
		headers = headers[:limit]
	}

	files := []domain.FileUpload{}
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, domain.FileUpload{
			Name:    header.Filename,
			Content: content,
		})
	}
	return files, nil
}
