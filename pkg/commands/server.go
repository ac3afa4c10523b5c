package commands

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/commands/internal/options"
	"github.com/mulled-tools/mulled/pkg/mulled"
	"github.com/mulled-tools/mulled/pkg/registry"
	"github.com/mulled-tools/mulled/pkg/xlog"
)

// NewServerCommand returns a ServerCommand with default values.
func NewServerCommand() *ServerCommand {
	return &ServerCommand{
		Common:   options.NewCommon(),
		Registry: options.NewRegistry(),
		Server:   options.NewServer(),
	}
}

// ServerCommand serves the image name generator as a small web form
// plus a JSON API.
type ServerCommand struct {
	Common   *options.Common
	Registry *options.Registry
	Server   *options.Server
}

// ToCLI transforms to a *cli.Command.
func (c *ServerCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"srv"},
		Usage:   "Serve the image name generator form over HTTP",
		UsageText: `mulled server [OPTIONS]

# Start the server with default port 8080
$ mulled server

# Start the server with custom port
$ mulled server --port 9000
`,
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ServerCommand) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Server.Flags()...)
	flags = append(flags, c.Registry.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *ServerCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Setup()

	client, err := c.Registry.NewClient(c.Common)
	if err != nil {
		return err
	}

	address := c.Server.Address()
	xlog.C(ctx).Infof("Starting server %s", address)

	srv := &http.Server{
		Addr:              address,
		Handler:           c.newRouter(client),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			xlog.C(ctx).Error("Server error", "error", err)
		}
	}()

	cmdhelper.Fprintf(cmd.Writer, "Server started at http://%s", address)
	cmdhelper.Fprintf(cmd.Writer, "Press Ctrl+C to stop the server")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:gomnd // shutdown grace period
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		xlog.C(ctx).Error("Server shutdown failed", "error", err)
		return err
	}

	xlog.C(ctx).Info("Server stopped")
	return nil
}

func (c *ServerCommand) newRouter(client *registry.Client) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(indexTemplate)

	router.GET("/ping", func(gc *gin.Context) {
		gc.String(http.StatusOK, "OK")
	})
	router.GET("/", func(gc *gin.Context) {
		gc.HTML(http.StatusOK, "index", gin.H{
			"Registry":  client.Host,
			"Namespace": client.Namespace,
		})
	})
	router.POST("/api/generate", c.handleGenerate(client))
	return router
}

type targetRequest struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
}

type generateRequest struct {
	Targets     []targetRequest `json:"targets"`
	BaseImage   string          `json:"base_image"`
	BuildNumber int64           `json:"build_number"`
	Check       bool            `json:"check"`
}

type generateResponse struct {
	Image       string `json:"image"`
	RegistryURL string `json:"registry_url"`
	Exists      *bool  `json:"exists,omitempty"`
}

// handleGenerate turns the submitted (tool, version) rows into an image
// name. The rows bypass the specification string parser, exactly like
// the interactive command.
func (c *ServerCommand) handleGenerate(client *registry.Client) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var req generateRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			gc.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		targets := make([]mulled.Target, 0, len(req.Targets))
		for _, t := range req.Targets {
			target := mulled.NewTarget(t.Tool, t.Version)
			if target.Name == "" && target.Version == "" {
				// skip rows the user added but left blank
				continue
			}
			targets = append(targets, target)
		}

		image, err := mulled.ImageName(targets,
			mulled.WithBaseImage(req.BaseImage),
			mulled.WithBuildNumber(req.BuildNumber),
		)
		if err != nil {
			gc.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp := generateResponse{
			Image:       image,
			RegistryURL: client.ImageURL(image),
		}
		if req.Check {
			exists, err := client.ImageExists(gc.Request.Context(), image)
			if err != nil {
				xlog.C(gc.Request.Context()).Warnf("existence check failed: %v", err)
			}
			resp.Exists = &exists
		}
		gc.JSON(http.StatusOK, resp)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateText))

const indexTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Multi-Package BioContainers — Generate Name</title>
<style>
body { font-family: sans-serif; max-width: 42em; margin: 2em auto; padding: 0 1em; }
.row { display: flex; gap: 0.5em; margin-bottom: 0.5em; }
.row input { flex: 1; padding: 0.3em; }
button { padding: 0.3em 0.8em; }
#result { margin-top: 1em; }
#result code { background: #f4f4f4; padding: 0.2em 0.4em; }
</style>
</head>
<body>
<h1>Generate Name</h1>
<p>Image names are generated for <code>{{ .Registry }}/{{ .Namespace }}</code>.</p>
<div id="tools"></div>
<p>
<button type="button" onclick="addRow()">Add Tool</button>
<button type="button" onclick="removeRow()">Remove Tool</button>
<button type="button" onclick="submitForm()">Generate Image Name</button>
<button type="button" onclick="reset()">Reset</button>
</p>
<div id="result"></div>
<script>
function addRow() {
  const row = document.createElement("div");
  row.className = "row";
  row.innerHTML = '<input placeholder="Tool, for example samtools">' +
    '<input placeholder="Version, for example 1.15">';
  document.getElementById("tools").appendChild(row);
}
function removeRow() {
  const rows = document.querySelectorAll("#tools .row");
  if (rows.length > 0) rows[rows.length - 1].remove();
}
function reset() {
  document.getElementById("tools").innerHTML = "";
  document.getElementById("result").innerHTML = "";
  addRow();
}
async function submitForm() {
  const targets = [];
  for (const row of document.querySelectorAll("#tools .row")) {
    const [tool, version] = row.querySelectorAll("input");
    targets.push({ tool: tool.value, version: version.value });
  }
  const resp = await fetch("/api/generate", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ targets: targets, check: true }),
  });
  const data = await resp.json();
  const result = document.getElementById("result");
  if (!resp.ok) {
    result.textContent = "Error: " + data.error;
    return;
  }
  const mark = data.exists ? "✓" : "❌";
  result.innerHTML = "<p><code></code> " +
    '<button type="button" onclick="copyName()">📋</button></p>' +
    '<p><a target="_blank"></a> ' + mark + "</p>";
  result.querySelector("code").textContent = data.image;
  const link = result.querySelector("a");
  link.href = data.registry_url;
  link.textContent = data.registry_url;
}
function copyName() {
  navigator.clipboard.writeText(document.querySelector("#result code").textContent);
}
addRow();
</script>
</body>
</html>
`
