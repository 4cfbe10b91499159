package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/auth"
	"quotegen/handlers"
	"quotegen/sessions"
)

func main() {
	// Optional .env for credential and address overrides.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	creds, err := auth.LoadCredentials()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	store := sessions.NewStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Login gate ───────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage())
		se.Router.POST("/login", handlers.HandleLogin(creds))
		se.Router.POST("/logout", handlers.HandleLogout(store))

		// ── Quotation form ───────────────────────────────────────
		se.Router.GET("/quote", handlers.RequireAuth(handlers.HandleQuotePage(store)))
		se.Router.POST("/quote/field", handlers.RequireAuth(handlers.HandleFieldUpdate(store)))
		se.Router.POST("/quote/items", handlers.RequireAuth(handlers.HandleAddItem(store)))
		se.Router.DELETE("/quote/items/{index}", handlers.RequireAuth(handlers.HandleRemoveItem(store)))

		// ── Export / import / submit ─────────────────────────────
		se.Router.GET("/quote/export/excel", handlers.RequireAuth(handlers.HandleExportExcel(store)))
		se.Router.GET("/quote/export/pdf", handlers.RequireAuth(handlers.HandleExportPDF(store)))
		se.Router.POST("/quote/import", handlers.RequireAuth(handlers.HandleImportPDF(store)))
		se.Router.POST("/quote/submit", handlers.RequireAuth(handlers.HandleSubmit(store)))

		// Redirect home to the form
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quote")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
