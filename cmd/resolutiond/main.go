// Command resolutiond serves the iterative entity resolution engine over
// HTTP, backed by an OpenSearch cluster and a directory of model documents.
package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantfall/resolution/catcher"
	oscli "github.com/quantfall/resolution/os"
	"github.com/quantfall/resolution/opensearchbackend"
	"github.com/quantfall/resolution/server"
)

func main() {
	nodes := strings.Split(getenv("RESOLUTION_OS_NODES", "https://localhost:9200"), ",")
	user := getenv("RESOLUTION_OS_USER", "admin")
	password := getenv("RESOLUTION_OS_PASSWORD", "")
	modelDir := getenv("RESOLUTION_MODEL_DIR", "./models")
	addr := getenv("RESOLUTION_ADDR", ":8080")

	if err := oscli.Connect(nodes, user, password); err != nil {
		catcher.Error("failed to connect to opensearch", err, map[string]any{"nodes": nodes})
		os.Exit(1)
	}

	retry := &catcher.RetryConfig{MaxRetries: 3, WaitTime: time.Second}
	backend := opensearchbackend.New(retry)
	store := newFileStore(modelDir)

	srv := server.New(store, backend)

	r := gin.Default()
	srv.Register(r)

	catcher.Info("resolutiond listening", map[string]any{"addr": addr, "model_dir": modelDir})
	if err := r.Run(addr); err != nil {
		catcher.Error("server stopped", err, nil)
		os.Exit(1)
	}
}

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
