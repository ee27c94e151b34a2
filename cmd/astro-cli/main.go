package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
	emailsvc "github.com/Madhusudhan63dag/astro-api/internal/email/service"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
	paysvc "github.com/Madhusudhan63dag/astro-api/internal/payments/service"
)

var (
	orderID   string
	paymentID string
	signature string
	secret    string
	testTo    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astro-cli",
	Short: "SriAstroVeda relay operations tool",
	Long: `astro-cli provides command-line helpers for the relay service.
Verify payment signatures, resolve service catalog codes and send test
emails through the configured provider.`,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Razorpay payment signature",
	RunE: func(cmd *cobra.Command, args []string) error {
		if secret == "" {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			secret = cfg.RazorpayKeySecret
		}
		if orderID == "" || paymentID == "" || signature == "" {
			return fmt.Errorf("order-id, payment-id and signature are required")
		}
		if paysvc.VerifySignature(orderID, paymentID, signature, secret) {
			fmt.Println("signature valid")
			return nil
		}
		return fmt.Errorf("signature mismatch")
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [code]",
	Short: "Resolve a service catalog code to its display name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := domain.Resolve(args[0], domain.DefaultConsultation)
		if svc.Known {
			fmt.Printf("%s -> %s\n", svc.Code, svc.Name)
			return
		}
		fmt.Printf("%s -> %s (not in catalog)\n", args[0], svc.Name)
	},
}

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a test email through the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		to := testTo
		if to == "" {
			to = cfg.AdminEmail
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		sender := emailsvc.NewRouter(cfg)
		err = sender.Send(ctx, edomain.Message{
			To:      to,
			Subject: fmt.Sprintf("Test email - %s", cfg.BrandName),
			Body:    fmt.Sprintf("Test email sent via %s provider at %s.", cfg.EmailProvider, time.Now().Format(time.RFC3339)),
		})
		if err != nil {
			return fmt.Errorf("send test email: %w", err)
		}
		fmt.Printf("test email sent to %s via %s\n", to, cfg.EmailProvider)
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&orderID, "order-id", "", "Razorpay order id")
	verifyCmd.Flags().StringVar(&paymentID, "payment-id", "", "Razorpay payment id")
	verifyCmd.Flags().StringVar(&signature, "signature", "", "signature from the checkout callback")
	verifyCmd.Flags().StringVar(&secret, "secret", "", "key secret (defaults to RAZORPAY_KEY_SECRET)")
	sendTestCmd.Flags().StringVar(&testTo, "to", "", "recipient (defaults to the admin address)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sendTestCmd)
}
