package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/superbutton/superbutton-go/internal/backend"
	"github.com/superbutton/superbutton-go/internal/config"
	"github.com/superbutton/superbutton-go/internal/guard"
	"github.com/superbutton/superbutton-go/internal/identity"
	"github.com/superbutton/superbutton-go/internal/logger"
	"github.com/superbutton/superbutton-go/internal/observability"
	"github.com/superbutton/superbutton-go/internal/store"
)

type cliFlags struct {
	projectName    string
	projectWebsite string
}

func main() {
	flags := &cliFlags{}
	flag.StringVar(&flags.projectName, "create-name", "", "create a project with this name")
	flag.StringVar(&flags.projectWebsite, "create-website", "", "website of the project to create")
	flag.Parse()

	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		identity.Module,
		backend.Module,
		store.Module,
		fx.Supply(flags),
		fx.Invoke(run),
	)
	app.Run()
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, flags *cliFlags, session *identity.Session, s *store.Store, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := dashboard(context.Background(), flags, session, s); err != nil {
					log.Error("command failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

// dashboard runs the same flow the web dashboard runs on load: resolve the
// identity, pass the auth guard, fetch the profile and the projects, then
// optionally create a project.
func dashboard(ctx context.Context, flags *cliFlags, session *identity.Session, s *store.Store) error {
	token := os.Getenv("SUPERBUTTON_ID_TOKEN")
	if token == "" {
		session.Clear()
	} else if err := session.SetIDToken(token); err != nil {
		return err
	}

	if err := guard.AwaitResolution(ctx, session); err != nil {
		return err
	}
	if redirect, ok := guard.Auth(session); !ok {
		return fmt.Errorf("not signed in, set SUPERBUTTON_ID_TOKEN (the dashboard would send you to %s)", redirect)
	}

	if err := s.LoadUser(ctx); err != nil {
		return err
	}
	if err := s.LoadProjects(ctx); err != nil {
		return err
	}

	if flags.projectName != "" {
		err := s.CreateProject(ctx, backend.ProjectCreateParams{
			Name:    flags.projectName,
			Website: flags.projectWebsite,
		})
		if err != nil {
			return err
		}
	}

	user := s.User()
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	for _, project := range s.Projects() {
		marker := " "
		if project.ID.String() == s.ActiveProjectID() {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  %s\n", marker, project.ID, project.Name, project.URL)
	}
	if notification := s.Notification(); notification != nil && notification.Active {
		fmt.Printf("-- %s\n", notification.Message)
	}
	return nil
}
