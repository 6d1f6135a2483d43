// heladeria-term is a counter terminal for the heladería: it browses the
// menu, manages the cart, confirms orders and drives the kitchen board
// over the HTTP API. Core assets are cached on startup so the static
// frontend keeps loading during network outages.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"heladeria/internal/client"
	"heladeria/internal/offline"
	"heladeria/internal/ui"
)

const cacheName = "heladeria-app-v1"

var coreAssets = []string{
	"/",
	"/static/css/style.css",
	"/static/js/main.js",
	"/static/manifest.json",
	"/static/images/icecream-bg.svg",
}

// stdoutRegion prints its full content under a header on every replace.
type stdoutRegion struct {
	title string
}

func (r *stdoutRegion) Replace(content string) {
	fmt.Printf("--- %s ---\n%s\n", r.title, strings.TrimRight(content, "\n"))
}

type stdoutAlerter struct{}

func (stdoutAlerter) Alert(message string) {
	fmt.Printf("¡! %s\n", message)
}

// tableField holds the table number typed with the confirmar command.
type tableField struct {
	value string
}

func (f *tableField) Value() string { return f.value }
func (f *tableField) Clear()        { f.value = "" }

func main() {
	baseURL := flag.String("b", envOr("BASE_URL", "http://localhost:8080"), "API base URL")
	cacheRoot := flag.String("c", defaultCacheRoot(), "offline cache directory")
	flag.Parse()

	log := slog.Default()
	ctx := context.Background()

	cache := offline.New(*cacheRoot, cacheName)
	if err := cache.Install(ctx, nil, *baseURL, coreAssets); err != nil {
		log.Warn("offline cache install failed", "error", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Error("cookie jar init failed", "error", err)
		os.Exit(1)
	}
	httpClient := &http.Client{
		Jar:       jar,
		Transport: &offline.Transport{Cache: cache},
	}

	api := client.New(*baseURL, httpClient)

	alert := stdoutAlerter{}
	field := &tableField{}
	cart := ui.NewCartView(api, &stdoutRegion{title: "Carrito"}, &stdoutRegion{title: "Total"}, log)
	menu := ui.NewMenuView(api, &stdoutRegion{title: "Menú"}, cart, log)
	board := ui.NewOrderBoard(api, &stdoutRegion{title: "Pedidos"}, alert, log)
	confirm := ui.NewConfirm(api, cart, field, alert, log)

	menu.Load(ctx)
	cart.Load(ctx)
	board.Load(ctx)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "menu":
			menu.Load(ctx)
		case "carrito":
			cart.Load(ctx)
		case "pedidos":
			board.Load(ctx)
		case "add":
			if n, err := strconv.Atoi(arg); err == nil {
				menu.Add(ctx, n)
			} else {
				fmt.Println("uso: add <número de menú>")
			}
		case "quitar":
			if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
				cart.Remove(ctx, id)
			} else {
				fmt.Println("uso: quitar <id>")
			}
		case "confirmar":
			field.value = arg
			confirm.Submit(ctx)
		case "entregar":
			if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
				board.Deliver(ctx, id)
			} else {
				fmt.Println("uso: entregar <id de pedido>")
			}
		case "ayuda":
			printHelp()
		case "salir":
			return
		case "":
		default:
			fmt.Printf("comando desconocido: %s\n", cmd)
		}
		fmt.Print("> ")
	}
}

func printHelp() {
	fmt.Println(`comandos:
  menu            recargar el menú
  carrito         recargar el carrito
  pedidos         recargar los pedidos
  add <n>         agregar el artículo n del menú al carrito
  quitar <id>     quitar un artículo del carrito
  confirmar <n>   confirmar el pedido para la mesa n
  entregar <id>   marcar un pedido como entregado
  salir           terminar`)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func defaultCacheRoot() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".heladeria-cache"
	}
	return filepath.Join(dir, "heladeria")
}
