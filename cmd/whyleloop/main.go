package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	whyleloop "github.com/whyleloop/whyleloop-go"
	"github.com/whyleloop/whyleloop-go/config"
)

func main() {
	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)
	restoreEmail := restoreCmd.String("email", "", "restore by account email instead of device fingerprint")

	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	createDest := createCmd.String("dest", "", "destination path or URL for the new link")
	createMeta := createCmd.String("meta", "", "link metadata as a JSON object")

	resolveCmd := flag.NewFlagSet("resolve", flag.ExitOnError)
	resolveSlug := resolveCmd.String("slug", "", "slug to resolve")
	resolveHost := resolveCmd.String("hostname", "", "custom domain the slug was served from")

	if len(os.Args) < 2 {
		fmt.Println("expected 'restore', 'create' or 'resolve' subcommands")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	client, err := whyleloop.NewClient(cfg)
	if err != nil {
		log.Fatalf("Error creating client: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "restore":
		restoreCmd.Parse(os.Args[2:])

		links, err := client.Restore(ctx, *restoreEmail)
		if err != nil {
			log.Fatalf("Error restoring links: %v", err)
		}
		if err := printJSON(links); err != nil {
			log.Fatalf("Error encoding output: %v", err)
		}

	case "create":
		createCmd.Parse(os.Args[2:])
		if *createDest == "" {
			createCmd.PrintDefaults()
			os.Exit(1)
		}

		var meta map[string]any
		if *createMeta != "" {
			if err := json.Unmarshal([]byte(*createMeta), &meta); err != nil {
				log.Fatalf("Error parsing -meta: %v", err)
			}
		}

		link, err := client.CreateLink(ctx, *createDest, meta)
		if err != nil {
			log.Fatalf("Error creating link: %v", err)
		}
		if err := printJSON(link); err != nil {
			log.Fatalf("Error encoding output: %v", err)
		}

	case "resolve":
		resolveCmd.Parse(os.Args[2:])
		if *resolveSlug == "" {
			resolveCmd.PrintDefaults()
			os.Exit(1)
		}

		details, err := client.ResolveSlug(ctx, *resolveSlug, *resolveHost)
		if err != nil {
			log.Fatalf("Error resolving slug: %v", err)
		}
		if err := printJSON(details); err != nil {
			log.Fatalf("Error encoding output: %v", err)
		}

	default:
		fmt.Println("expected 'restore', 'create' or 'resolve' subcommands")
		os.Exit(1)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}
