package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/dvl-uiux/portfolio/config"
	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/db"
	"github.com/dvl-uiux/portfolio/email"
	h "github.com/dvl-uiux/portfolio/handlers"
	"github.com/dvl-uiux/portfolio/images"
	"github.com/dvl-uiux/portfolio/inbox"
	"github.com/dvl-uiux/portfolio/notification"
	"github.com/dvl-uiux/portfolio/page"
	"github.com/dvl-uiux/portfolio/sms"
)

func main() {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newInboxCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newInboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read stored contact messages",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List the newest contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Contact.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}
			if err := db.Init(cfg.Contact.DatabaseURL); err != nil {
				return err
			}
			defer db.Close()

			entries, err := inbox.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			total, err := inbox.Count(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECEIVED\tFROM\tMESSAGE")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s <%s>\t%s\n",
					e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Name, e.Email, firstLine(e.Message))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d messages\n", len(entries), total)
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 50, "maximum number of messages")
	cmd.AddCommand(list)
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load content
	doc, err := content.Default()
	if err != nil {
		return fmt.Errorf("load embedded content: %w", err)
	}
	if cfg.Content.Path != "" {
		if doc, err = content.Load(cfg.Content.Path); err != nil {
			return err
		}
	}
	src := content.NewSource(doc)
	if cfg.Content.Path != "" {
		if err := content.Watch(ctx, cfg.Content.Path, src); err != nil {
			return err
		}
	}

	sender, err := newSender(cfg.Contact)
	if err != nil {
		return err
	}
	defer db.Close()

	pages, err := page.NewStore(cfg.Server.SessionTTL)
	if err != nil {
		return err
	}
	defer pages.Close()

	renderer, err := images.NewRenderer("./static")
	if err != nil {
		return fmt.Errorf("create image renderer: %w", err)
	}

	app := fiber.New(h.AppConfig(cfg.Server))

	app.Use(recover.New())
	app.Use(h.NewRateLimiter(cfg.Server))
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", "./static")
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	h.New(pages, src, sender, renderer, cfg.Contact.SendTimeout).
		Routes(app, h.SubmitRateLimiter(cfg.Server))

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	fmt.Printf("Starting server on port %s...\n", cfg.Server.Port)
	return app.Listen(":" + cfg.Server.Port)
}

// newSender delivers through the inbox when a database is configured and
// simulates delivery otherwise.
func newSender(cfg config.ContactConfig) (contact.Sender, error) {
	if cfg.DatabaseURL == "" {
		log.Printf("[CONTACT] No DATABASE_URL, contact messages are simulated")
		return contact.Simulated{Delay: cfg.SimulatedSendDelay}, nil
	}
	if err := db.Init(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	notifiers := map[string]notification.Notifier{}
	if cfg.SendGridAPIKey != "" {
		mail, err := email.NewEmailService(cfg.SendGridAPIKey, cfg.FromEmail, cfg.ToEmail)
		if err != nil {
			return nil, err
		}
		notifiers["email"] = mail
	}
	if cfg.TwilioAccountSID != "" {
		text, err := sms.NewSMSService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.ToNumber)
		if err != nil {
			return nil, err
		}
		notifiers["sms"] = text
	}

	return notification.NewNotificationService(inbox.Save, notifiers)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + " ..."
		}
	}
	return s
}
