package internal

import (
	"teamhumanity/story-api/aws"
	"teamhumanity/story-api/internal/service"
	"teamhumanity/story-api/pkg/ratelimit"

	"gorm.io/gorm"
)

type Deps struct {
	DB         *gorm.DB
	S3         *aws.S3Client
	Sort       *service.SortOrder
	Highlights *service.Highlight

	// Separate limiter instances so the two forms never share buckets
	ContactLimiter *ratelimit.Limiter
	JoinLimiter    *ratelimit.Limiter
}
