package options

import (
	"crypto/tls"
	"errors"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/registry"
	"github.com/mulled-tools/mulled/pkg/util/xhttp"
)

// RegistryFlagCategory is the category name for registry flags.
const RegistryFlagCategory = "[Registry]"

// NewRegistry returns a *Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Address:   registry.DefaultHost,
		Namespace: registry.DefaultNamespace,
	}
}

// Registry defines the registry client options.
type Registry struct {
	Address   string   `json:"address,omitempty" yaml:"address,omitempty"`
	Namespace string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Insecure  bool     `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	CAFiles   []string `json:"ca_files,omitempty" yaml:"ca_files,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry",
			Usage:       "registry address to check image existence against",
			Sources:     cli.EnvVars("MULLED_REGISTRY"),
			Destination: &o.Address,
			Value:       o.Address,
			Category:    RegistryFlagCategory,
		},
		&cli.StringFlag{
			Name:        "namespace",
			Usage:       "registry organization the images live in",
			Sources:     cli.EnvVars("MULLED_NAMESPACE"),
			Destination: &o.Namespace,
			Value:       o.Namespace,
			Category:    RegistryFlagCategory,
		},
		&cli.BoolFlag{
			Name:        "insecure",
			Usage:       "enable to skip verify registry SSL certificate",
			Sources:     cli.EnvVars("MULLED_REGISTRY_INSECURE"),
			Destination: &o.Insecure,
			Value:       o.Insecure,
			Category:    RegistryFlagCategory,
		},
		&cli.StringSliceFlag{
			Name:        "ca-files",
			Usage:       "specify CA files to verify registry SSL certificate",
			Destination: &o.CAFiles,
			Value:       o.CAFiles,
			Validator: func(paths []string) error {
				var errs []error
				for _, path := range paths {
					if _, err := os.ReadFile(path); err != nil {
						errs = append(errs, err)
					}
				}
				return errors.Join(errs...)
			},
			Category: RegistryFlagCategory,
		},
	}
}

// NewClient returns a registry client with the options configured.
func (o *Registry) NewClient(common *Common) (*registry.Client, error) {
	client, err := registry.NewClient(o.Address)
	if err != nil {
		return nil, err
	}
	if o.Namespace != "" {
		client.Namespace = o.Namespace
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tlsConfig := &tls.Config{
		InsecureSkipVerify: o.Insecure, //nolint:gosec // explicit skip verify
	}
	if len(o.CAFiles) > 0 {
		pool, err := cmdhelper.LoadTLSCertFiles(o.CAFiles...)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}
	tr.TLSClientConfig = tlsConfig

	var rt http.RoundTripper = tr
	if common != nil && common.Debug {
		rt = xhttp.NewDumpTransport(tr)
	}
	client.Client = &http.Client{Transport: rt}
	return client, nil
}
