// Package app wires the router, middleware and shared dependencies
package app

import (
	"fmt"
	"strings"
	"teamhumanity/story-api/app/contact"
	"teamhumanity/story-api/app/join"
	"teamhumanity/story-api/app/root"
	"teamhumanity/story-api/app/story"
	"teamhumanity/story-api/app/upload"
	"teamhumanity/story-api/aws"
	"teamhumanity/story-api/db"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/service"
	"teamhumanity/story-api/pkg/middleware"
	"teamhumanity/story-api/pkg/ratelimit"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{
		ContactLimiter: ratelimit.New(
			viper.GetInt("ratelimit.contact.limit"),
			viper.GetDuration("ratelimit.contact.window"),
		),
		JoinLimiter: ratelimit.New(
			viper.GetInt("ratelimit.join.limit"),
			viper.GetDuration("ratelimit.join.window"),
		),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database
	d.Sort = service.NewSortOrder(database, viper.GetInt("stories.sort_gap"))
	d.Highlights = service.NewHighlight(database)

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}
	d.S3 = s3

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	throttle := middleware.ThrottleMiddleware(middleware.ThrottleConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.global_rps"),
		Burst:             viper.GetInt("ratelimit.global_rps") * 2,
	})

	admin := middleware.NewAdminMiddleware()
	formBody := middleware.BodySizeLimiter(1 << 20)
	uploadBody := middleware.BodySizeLimiter(viper.GetInt64("upload.video_max_size") + 1<<20)

	m := router.Group("/api", throttle)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/stories		-> Published stories in display order
		m.GET("/stories", func(c *gin.Context) { story.StoryList(c, d) })

		// GET /api/stories/:slug	-> Resolves a slug to a single story
		m.GET("/stories/:slug", func(c *gin.Context) { story.StoryFetch(c, d) })

		// POST /api/contact		-> Stores a contact message (rate limited per IP)
		m.POST("/contact", formBody, func(c *gin.Context) { contact.ContactSubmit(c, d) })

		// POST /api/join		-> Stores a join request (rate limited per IP)
		m.POST("/join", formBody, func(c *gin.Context) { join.JoinSubmit(c, d) })
	}

	a := m.Group("/admin", admin)
	{
		// POST /api/admin/stories		-> Creates or overwrites a story
		a.POST("/stories", formBody, func(c *gin.Context) { story.StoryUpsert(c, d) })

		// DELETE /api/admin/stories/:id	-> Deletes a story and its images
		a.DELETE("/stories/:id", func(c *gin.Context) { story.StoryDelete(c, d) })

		// POST /api/admin/stories/:id/move	-> Moves a story up or down one position
		a.POST("/stories/:id/move", formBody, func(c *gin.Context) { story.StoryMove(c, d) })

		// POST /api/admin/stories/:id/pin	-> Pins a story to highlight slot 1 or 2
		a.POST("/stories/:id/pin", formBody, func(c *gin.Context) { story.StoryPin(c, d) })

		// POST /api/admin/stories/:id/unpin	-> Clears a story's highlight slot
		a.POST("/stories/:id/unpin", func(c *gin.Context) { story.StoryUnpin(c, d) })

		// GET /api/admin/messages		-> Contact message inbox
		a.GET("/messages", func(c *gin.Context) { contact.MessageList(c, d) })
		a.POST("/messages/:id/read", func(c *gin.Context) { contact.MessageMarkRead(c, d) })
		a.POST("/messages/:id/unread", func(c *gin.Context) { contact.MessageMarkUnread(c, d) })
		a.POST("/messages/:id/archive", func(c *gin.Context) { contact.MessageArchive(c, d) })
		a.POST("/messages/:id/unarchive", func(c *gin.Context) { contact.MessageUnarchive(c, d) })
		a.DELETE("/messages/:id", func(c *gin.Context) { contact.MessageDelete(c, d) })

		// GET /api/admin/join-requests		-> Join request review queue
		a.GET("/join-requests", func(c *gin.Context) { join.RequestList(c, d) })
		a.POST("/join-requests/:id/read", func(c *gin.Context) { join.RequestMarkRead(c, d) })
		a.POST("/join-requests/:id/unread", func(c *gin.Context) { join.RequestMarkUnread(c, d) })
		a.POST("/join-requests/:id/archive", func(c *gin.Context) { join.RequestArchive(c, d) })
		a.POST("/join-requests/:id/unarchive", func(c *gin.Context) { join.RequestUnarchive(c, d) })
		a.DELETE("/join-requests/:id", func(c *gin.Context) { join.RequestDelete(c, d) })

		// POST /api/admin/upload		-> Uploads a media file through the server
		a.POST("/upload", uploadBody, func(c *gin.Context) { upload.Upload(c, d) })

		// POST /api/admin/upload-sign		-> Presigns a direct-to-bucket upload
		a.POST("/upload-sign", formBody, func(c *gin.Context) { upload.Sign(c, d) })
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
