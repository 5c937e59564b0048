package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxPhotoEdge  = 1600
	webpQuality   = 80
)

var (
	clientOnce sync.Once
	bucket     *oss.Bucket
	clientErr  error
)

func getBucket() (*oss.Bucket, error) {
	clientOnce.Do(func() {
		endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
		keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
		keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
		bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET_NAME"))
		if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
			clientErr = fmt.Errorf("object storage is not configured")
			return
		}
		client, err := oss.New(endpoint, keyID, keySecret)
		if err != nil {
			clientErr = err
			return
		}
		bucket, clientErr = client.Bucket(bucketName)
	})
	return bucket, clientErr
}

// PublicURL builds the public address of an uploaded object.
func PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s",
		strings.TrimSpace(os.Getenv("OSS_BUCKET_NAME")),
		strings.TrimSpace(os.Getenv("OSS_ENDPOINT")),
		key,
	)
}

// UploadIssuePhoto stores one issue photo and returns its public URL.
// Photos are downscaled and re-encoded to webp before upload; files that do
// not decode as images are uploaded as-is with their sniffed content type.
func UploadIssuePhoto(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file %s exceeds the 5MB limit", fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("issue-photos/%d-%s%s",
		time.Now().UnixMilli(), uuid.NewString()[:8], ext(fh.Filename))

	img, _, decErr := image.Decode(bytes.NewReader(raw))
	if decErr != nil {
		// not a decodable image, store the original bytes
		log.Printf("[STORAGE] %s not decodable (%v), uploading raw", fh.Filename, decErr)
		return putObject(key, raw, sniffContentType(raw))
	}

	img = imaging.Fit(img, maxPhotoEdge, maxPhotoEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key = strings.TrimSuffix(key, ext(fh.Filename)) + ".webp"
	return putObject(key, buf.Bytes(), "image/webp")
}

func putObject(key string, data []byte, contentType string) (string, error) {
	b, err := getBucket()
	if err != nil {
		return "", err
	}
	if err := b.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return PublicURL(key), nil
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func ext(filename string) string {
	e := strings.ToLower(path.Ext(filename))
	if e == "" {
		e = ".bin"
	}
	return e
}
