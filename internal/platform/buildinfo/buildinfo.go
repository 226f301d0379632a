// Package buildinfo expone la versión del binario (inyectada por ldflags).
package buildinfo

import (
	goversion "github.com/caarlos0/go-version"
)

const (
	Application = "pets-provider"
	Description = "Content provider de mascotas: contrato, storage y dispatcher por URI"
	WebSite     = "https://github.com/example/pets-provider"
)

// Seteadas con -ldflags "-X pets-provider/internal/platform/buildinfo.Version=..."
var (
	Version   = ""
	Commit    = ""
	TreeState = ""
	Date      = ""
	BuiltBy   = ""
)

func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, WebSite),
		func(i *goversion.Info) {
			if Commit != "" {
				i.GitCommit = Commit
			}
			if Version != "" {
				i.GitVersion = Version
			}
			if TreeState != "" {
				i.GitTreeState = TreeState
			}
			if Date != "" {
				i.BuildDate = Date
			}
			if BuiltBy != "" {
				i.BuiltBy = BuiltBy
			}
		},
	)
}
