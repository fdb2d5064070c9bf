package invoke

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/railyard-cli/railyard/compose"
	"github.com/railyard-cli/railyard/config"
	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/sym"
)

// writeProxyConfig overwrites the scaffolded Vite config with one whose
// dev-server proxy upstreams to the api service. This is the generated
// app's reverse proxy: it forwards /api at request time, so it depends on
// nothing at compose time. Written after the scaffold so create-vite
// cannot clobber it, and rendered from the same topology constants as the
// manifest — the upstream name and the manifest's api service can never
// drift apart.
func (inv *Invoker) writeProxyConfig(frontendDir string) error {
	fileName := "vite.config.ts"
	if inv.cfg.Frontend == config.FrontendJavaScript {
		fileName = "vite.config.js"
	}

	content := fmt.Sprintf(`import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
  server: {
    host: true,
    port: %d,
    proxy: {
      '/api': {
        target: 'http://%s:%d',
        changeOrigin: true,
      },
    },
  },
})
`, compose.FrontendPort, compose.ServiceAPI, compose.APIPort)

	target := filepath.Join(frontendDir, fileName)
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", fileName)
	}

	inv.logger.Infow(sym.Run+" wrote frontend proxy config",
		logger.FieldPath, target,
		logger.FieldService, compose.ServiceAPI)
	return nil
}
