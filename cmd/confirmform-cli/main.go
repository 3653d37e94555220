package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	confirmform "github.com/goliatone/go-confirmform"
	"github.com/goliatone/go-confirmform/pkg/controller"
	"github.com/goliatone/go-confirmform/pkg/fieldset"
	"github.com/goliatone/go-confirmform/pkg/formschema"
	"github.com/goliatone/go-confirmform/pkg/httpbackend"
	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/renderers/tui"
)

func main() {
	alias := flag.String("alias", "email", "identity alias: username, email, or phone_number")
	username := flag.String("username", "", "known username to pre-fill the identity field")
	backendURL := flag.String("backend", "", "base URL of the confirmation service")
	schemaDir := flag.String("schemas", "", "directory of form schema documents")
	openapiDoc := flag.String("openapi", "", "OpenAPI document to derive fields from")
	operationID := flag.String("operation", "confirmSignUp", "operation ID in the OpenAPI document")
	htmlOutput := flag.String("html", "", "render HTML to this file instead of running the terminal flow")
	flag.Parse()

	ctx := context.Background()

	if *backendURL == "" {
		log.Fatal("a -backend URL is required")
	}
	backend, err := httpbackend.New(*backendURL)
	if err != nil {
		log.Fatalf("invalid backend: %v", err)
	}

	opts := []controller.Option{
		controller.OnError(func(err error) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}),
		controller.OnStateChange(func(state controller.AuthState, payload any) {
			fmt.Printf("state: %s\n", state)
		}),
	}
	if *username != "" {
		opts = append(opts, controller.WithUser(controller.User{Username: *username}))
	}
	if *schemaDir != "" {
		store, err := formschema.LoadFS(os.DirFS(*schemaDir))
		if err != nil {
			log.Fatalf("load schemas: %v", err)
		}
		opts = append(opts, confirmform.SchemaOptions(store, model.IdentityAlias(strings.TrimSpace(*alias)))...)
	}
	if *openapiDoc != "" {
		data, err := os.ReadFile(*openapiDoc)
		if err != nil {
			log.Fatalf("read OpenAPI document: %v", err)
		}
		fields, err := confirmform.FieldsFromOpenAPI(ctx, data, *operationID)
		if err != nil {
			log.Fatalf("derive fields: %v", err)
		}
		opts = append(opts, controller.WithFieldOptions(fieldset.WithOverrides(fields)))
	}

	ctrl, err := confirmform.New(*alias, backend, opts...)
	if err != nil {
		log.Fatalf("build controller: %v", err)
	}

	if *htmlOutput != "" {
		html, err := confirmform.RenderHTML(ctx, ctrl)
		if err != nil {
			log.Fatalf("render form: %v", err)
		}
		if err := os.WriteFile(*htmlOutput, html, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *htmlOutput)
		return
	}

	flow := tui.New()
	if err := flow.Run(ctx, ctrl); err != nil {
		log.Fatalf("confirmation flow: %v", err)
	}
}
