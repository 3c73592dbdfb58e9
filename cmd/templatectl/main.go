package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hyeonw/detailpage-client/internal/builder"
	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/gallery"
	"github.com/hyeonw/detailpage-client/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
)

const usage = `Usage: templatectl <command> [arguments]

Commands:
  list [category]                      list templates, optionally filtered by category
  show <id>                            print a template with its HTML body
  add <name> <category> <file.html>    register a new template from an HTML file
  rm <id>                              delete a template
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	reader, v, logger, err := builder.BuildTemplateCtl()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to build:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := ctxzap.ToContext(context.Background(), logger)

	switch args[0] {
	case "list":
		err = runList(ctx, reader, args[1:])
	case "show":
		err = runShow(ctx, reader, args[1:])
	case "add":
		err = runAdd(ctx, reader, v, args[1:])
	case "rm":
		err = runRemove(ctx, reader, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runList(ctx context.Context, reader *gallery.Reader, args []string) error {
	var category *entity.Category
	if len(args) > 0 {
		c := entity.Category(args[0])
		if err := c.Validate(); err != nil {
			return err
		}
		category = &c
	}

	templates, err := reader.List(ctx, category)
	if err != nil {
		return err
	}

	if len(templates) == 0 {
		fmt.Println("no templates")
		return nil
	}
	for _, t := range templates {
		marker := " "
		if t.IsDefault {
			marker = "*"
		}
		fmt.Printf("%s %4d  %-12s  %s\n", marker, t.ID, t.Category, t.Name)
	}
	return nil
}

func runShow(ctx context.Context, reader *gallery.Reader, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show expects exactly one template id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid template id %q", args[0])
	}

	detail, err := reader.Detail(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("ID:          %d\n", detail.ID)
	fmt.Printf("Name:        %s\n", detail.Name)
	fmt.Printf("Category:    %s\n", detail.Category)
	if detail.Description != "" {
		fmt.Printf("Description: %s\n", detail.Description)
	}
	fmt.Println()
	fmt.Println(detail.HTMLTemplate)
	return nil
}

func runAdd(ctx context.Context, reader *gallery.Reader, v *validator.Validator, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("add expects <name> <category> <file.html> [description]")
	}

	html, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("read template file: %w", err)
	}

	req := &entity.CreateTemplateRequest{
		Name:         args[0],
		Category:     entity.Category(args[1]),
		HTMLTemplate: string(html),
	}
	if len(args) == 4 {
		req.Description = args[3]
	}
	if err := v.ValidateCreateTemplate(req); err != nil {
		return err
	}

	created, err := reader.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("created template %d (%s)\n", created.ID, created.Name)
	return nil
}

func runRemove(ctx context.Context, reader *gallery.Reader, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("rm expects exactly one template id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid template id %q", args[0])
	}

	if err := reader.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("deleted template %d\n", id)
	return nil
}
