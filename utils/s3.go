package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/themoonexports/catalog-site/config"
)

var (
	S3Client      *s3.Client
	PresignClient *s3.PresignClient
)

// InitS3 initializes the S3 client
func InitS3() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(appConfig.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config, %v", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	PresignClient = s3.NewPresignClient(S3Client)
	log.Println("S3 Client Initialized")
	return nil
}

// UploadFileToS3 uploads a file to S3 and returns the Object Key
func UploadFileToS3(ctx context.Context, file io.Reader, objectKey string, contentType string) (string, error) {
	if S3Client == nil {
		if err := InitS3(); err != nil {
			return "", err
		}
	}

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(appConfig.AWSBucketName),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	return objectKey, nil
}

// GetPresignedURL generates a presigned URL for an object
func GetPresignedURL(ctx context.Context, objectKey string) (string, error) {
	if PresignClient == nil {
		if err := InitS3(); err != nil {
			return "", err
		}
	}

	request, err := PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(appConfig.AWSBucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}

	return request.URL, nil
}

// PublishArtifact uploads the built products.json plus every local gallery
// image it references to the configured bucket, mirroring the site layout
// (public/products.json, images/...). Returns a presigned URL for the
// artifact so the publisher can spot-check the upload.
func PublishArtifact(ctx context.Context, artifactPath string, siteRoot string, images []string) (string, error) {
	if appConfig.AWSBucketName == "" {
		return "", fmt.Errorf("AWS_BUCKET_NAME is not set")
	}

	f, err := os.Open(artifactPath)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	key, err := UploadFileToS3(ctx, f, "public/products.json", "application/json")
	f.Close()
	if err != nil {
		return "", err
	}

	for _, img := range images {
		// External URLs are already hosted elsewhere
		if strings.HasPrefix(img, "http") {
			continue
		}
		imgFile, err := os.Open(filepath.Join(siteRoot, img))
		if err != nil {
			log.Printf("Skipping missing image %s: %v", img, err)
			continue
		}
		contentType := mime.TypeByExtension(filepath.Ext(img))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if _, err := UploadFileToS3(ctx, imgFile, img, contentType); err != nil {
			imgFile.Close()
			return "", err
		}
		imgFile.Close()
	}

	return GetPresignedURL(ctx, key)
}
