package storage

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"eventsphere_backend/domain"
)

// MediaStorage uploads files to Cloudinary through its signed upload HTTP API
// and returns the hosted URL.
type MediaStorage struct {
	cloudName string
	apiKey    string
	apiSecret string
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
	logger    *logrus.Logger
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(cloudName, apiKey, apiSecret string, logger *logrus.Logger) domain.MediaStore {
	return &MediaStorage{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{},
		breaker:   gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "cloudinary"}),
		logger:    logger,
	}
}

func (ms *MediaStorage) UploadImage(ctx context.Context, folder, publicID string, content []byte) (string, error) {
	return ms.upload(ctx, "image", folder, publicID, content)
}

func (ms *MediaStorage) UploadDocument(ctx context.Context, folder, publicID string, content []byte) (string, error) {
	return ms.upload(ctx, "raw", folder, publicID, content)
}

func (ms *MediaStorage) upload(ctx context.Context, resourceType, folder, publicID string, content []byte) (string, error) {
	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload", ms.cloudName, resourceType)

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(content))
	form.Add("api_key", ms.apiKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signUpload(finalPublicID, timestamp, ms.apiSecret))

	result, err := ms.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		res, err := ms.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		var uploaded uploadResult
		if err := json.NewDecoder(res.Body).Decode(&uploaded); err != nil {
			return nil, err
		}
		if uploaded.SecureURL == "" {
			return nil, fmt.Errorf("cloudinary upload failed: %s", uploaded.Error.Message)
		}
		return uploaded.SecureURL, nil
	})
	if err != nil {
		ms.logger.Error("media upload failed: ", err)
		return "", err
	}

	return result.(string), nil
}

// Cloudinary signs the sorted upload parameters followed by the API secret
// with SHA1.
func signUpload(publicID, timestamp, apiSecret string) string {
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, apiSecret)
	return fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))
}
