package main

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"pets-provider/internal/router"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"petsctl": func() { os.Exit(run(os.Args[1:], os.Stdout, os.Stderr)) },
	})
}

// Cada script tiene su propio servidor in-memory en PETS_SERVER.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			ts := httptest.NewServer(router.NewRouter(router.Options{}))
			env.Defer(ts.Close)
			env.Setenv("PETS_SERVER", ts.URL)
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}
