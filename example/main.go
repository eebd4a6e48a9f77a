// Command example serves a small echo endpoint that round-trips articles
// through the registered JSON converter.
//
// Run it, then POST a JSON article:
//
//	curl -s -X POST localhost:8080/articles/echo \
//	    -H 'Content-Type: application/json' \
//	    -d '{"slug":"brine-basics","title":"Brine Basics","author":"usr-9"}'
package main

import (
	"flag"
	"net/http"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/zoobzio/relish"
	"github.com/zoobzio/relish/config"
	"github.com/zoobzio/relish/json"
	"github.com/zoobzio/relish/otel"
)

// Article is the payload served by this example.
type Article struct {
	Slug        string
	Title       string
	Author      string
	PublishedAt time.Time
}

var articleType = reflect.TypeFor[Article]()

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "settings file (yaml, toml, or json)")
	metrics := flag.Bool("metrics", false, "record OpenTelemetry metrics")
	flag.Parse()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	settings := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("load settings", zap.Error(err))
		}
		settings = loaded
	}

	codec, err := json.New(append(settings.Options(), json.WithLogger(logger))...)
	if err != nil {
		logger.Fatal("build codec", zap.Error(err))
	}

	converter, err := relish.NewConverter(codec, relish.WithLogger(logger))
	if err != nil {
		logger.Fatal("create converter", zap.Error(err))
	}

	provider, err := otel.Wrap(converter, otel.WithMetricsEnabled(*metrics))
	if err != nil {
		logger.Fatal("instrument converter", zap.Error(err))
	}

	if err := relish.Register(provider); err != nil {
		logger.Fatal("register provider", zap.Error(err))
	}

	http.HandleFunc("/articles/echo", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		mediaType := r.Header.Get("Content-Type")
		reader, ok := relish.ReaderFor(mediaType)
		if !ok || !reader.CanRead(articleType, mediaType) {
			http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			return
		}

		var article Article
		if err := reader.Read(r.Body, &article, mediaType, r.Header); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writer, ok := relish.WriterFor(relish.MediaTypeJSON)
		if !ok {
			http.Error(w, "no writer registered", http.StatusInternalServerError)
			return
		}
		if err := writer.Write(w, article, relish.MediaTypeJSON, w.Header()); err != nil {
			logger.Error("write response", zap.Error(err))
		}
	})

	logger.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
