package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/utils/filevalidation"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		// Body limit tracks the upload cap, with headroom for the
		// multipart envelope.
		app: fiber.New(fiber.Config{
			BodyLimit: filevalidation.MaxFileSize + 1024*1024,
		}),
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
