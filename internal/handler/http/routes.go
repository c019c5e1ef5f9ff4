package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	entryRefParam = "entry_ref"
	mediaIDParam  = "media_id"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.Route("/api/diary", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/encryption", func(r chi.Router) {
			r.Get("/status", h.encryptionStatus)
			r.Post("/setup", h.setupEncryption)
			r.Post("/unlock", h.unlock)
			r.Post("/lock", h.lock)
			r.Get("/hint", h.hint)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.listEntries)
			r.Post("/", h.createEntry)
			r.Get("/{entry_ref}", h.getEntry)
			r.Put("/{entry_ref}", h.updateEntry)
			r.Delete("/{entry_ref}", h.deleteEntry)
			r.Get("/{entry_ref}/media", h.listMedia)
		})

		r.Route("/media", func(r chi.Router) {
			r.Post("/upload/commit", h.commitMedia)
			r.Get("/{media_id}/download", h.downloadMedia)
			r.Delete("/{media_id}", h.deleteMedia)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
