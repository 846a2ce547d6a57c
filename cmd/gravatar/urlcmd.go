package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/function61/gokit/encoding/jsonfile"
	"github.com/function61/gravatar/pkg/gravatar"
	"github.com/spf13/cobra"
)

func urlEntry() *cobra.Command {
	baseUrl := gravatar.DefaultBaseURL
	if fromEnv := os.Getenv("GRAVATAR_BASE_URL"); fromEnv != "" {
		baseUrl = fromEnv
	}

	opts := gravatar.Options{}
	fileExtension := false
	asJson := false

	cmd := &cobra.Command{
		Use:   "url [email | -]...",
		Short: "Generate avatar URLs ('-' reads emails from stdin, one per line)",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitIfError(generateUrls(args, baseUrl, fileExtension, opts, asJson, os.Stdin, os.Stdout))
		},
	}

	cmd.Flags().StringVar(&baseUrl, "base-url", baseUrl, "Base URL the hash is appended to (also via $GRAVATAR_BASE_URL)")
	cmd.Flags().StringVar(&opts.Default, "default", "", "Fallback image: 404|mp|identicon|monsterid|wavatar|retro|robohash|blank or a custom image URL")
	cmd.Flags().StringVar(&opts.Rating, "rating", "", "Max content rating to permit: g|pg|r|x")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Image edge length in pixels, 1..2048")
	cmd.Flags().BoolVar(&opts.ForceDefault, "force-default", false, "Always serve the fallback image")
	cmd.Flags().BoolVar(&fileExtension, "extension", false, "Append .jpg after the hash")
	cmd.Flags().BoolVar(&asJson, "json", false, "Emit {email, hash, url} documents instead of bare URLs")

	return cmd
}

func hashEntry() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [email]...",
		Short: "Print only the email hash (the URL path segment)",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, email := range args {
				fmt.Println(gravatar.HashEmail(email))
			}
		},
	}
}

type urlDocument struct {
	Email string `json:"email"`
	Hash  string `json:"hash"`
	Url   string `json:"url"`
}

func generateUrls(
	emails []string,
	baseUrl string,
	fileExtension bool,
	opts gravatar.Options,
	asJson bool,
	stdin io.Reader,
	output io.Writer,
) error {
	generator := gravatar.NewWithBaseURL(baseUrl)
	if fileExtension {
		generator = generator.WithFileExtension()
	}

	if len(emails) == 1 && emails[0] == "-" {
		lines := bufio.NewScanner(stdin)

		emails = []string{}
		for lines.Scan() {
			emails = append(emails, lines.Text())
		}

		if err := lines.Err(); err != nil {
			return err
		}
	}

	for _, email := range emails {
		avatarUrl := generator.GenerateWithOptions(email, opts)

		if asJson {
			if err := jsonfile.Marshal(output, urlDocument{
				Email: email,
				Hash:  gravatar.HashEmail(email),
				Url:   avatarUrl,
			}); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(output, avatarUrl)
		}
	}

	return nil
}
