package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nessie-web/nessie"
	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/obs"
)

var (
	addr        string
	tlsAddr     string
	cert, key   string
	trace       bool
	readTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "nessie",
	Short: "A demo server showing nessie off",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		cfg.NET.ReadTimeout = readTimeout
		cfg.NET.WriteTimeout = readTimeout

		app := nessie.New(addr).
			Tune(cfg).
			Path("/", func(request *http.Request) *http.Response {
				return http.String(request, "Welcome to the Loch!\n")
			}).
			Path("/greet", func(request *http.Request) *http.Response {
				name := request.Headers.ValueOr("From", "stranger")
				return http.String(request, "hello, "+name+"\n")
			}).
			Path("/echo", func(request *http.Request) *http.Response {
				return http.String(request, request.Body)
			}).
			Path("/stats", func(request *http.Request) *http.Response {
				return http.JSON(request, map[string]string{
					"server": "nessie",
					"remote": request.Remote.String(),
					"proto":  request.Proto.String(),
				})
			}).
			NotifyOnStart(func() {
				fmt.Print("Serving on ")
				color.New(color.Bold, color.FgGreen).Printf("http://%s\n", addr)

				if tlsAddr != "" {
					fmt.Print("        and ")
					color.New(color.Bold, color.FgCyan).Printf("https://%s\n", tlsAddr)
				}
			})

		if trace {
			app.Observe(obs.LogSink{})
		}

		if tlsAddr != "" {
			if cert != "" && key != "" {
				app.TLS(tlsAddr, cert, key)
			} else {
				app.AutoHTTPS(tlsAddr)
			}
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		go func() {
			<-stop
			fmt.Println("\nDraining the Loch...")
			app.Stop()
		}()

		if err := app.Serve(); err != nil {
			log.Fatal(err)
		}
	},
}

func main() {
	rootCmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "address to serve plaintext HTTP on")
	rootCmd.Flags().StringVar(&tlsAddr, "tls", "", "address to additionally serve HTTPS on")
	rootCmd.Flags().StringVar(&cert, "cert", "", "path to a PEM certificate (self-signed if omitted)")
	rootCmd.Flags().StringVar(&key, "key", "", "path to a PEM private key (self-signed if omitted)")
	rootCmd.Flags().BoolVarP(&trace, "trace", "t", false, "log a span for every connection phase")
	rootCmd.Flags().DurationVar(&readTimeout, "timeout", time.Second, "read/write timeout per connection")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
