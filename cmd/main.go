package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/releasekit/nexttag"
)

// Version will be set by build process
var Version = "dev"

type CLI struct {
	VersionFile string `short:"f" help:"Path to the baseline version file (required unless set in config)"`
	Repo        string `short:"r" default:"." help:"Git repository path"`
	Prefix      string `short:"p" help:"Tag prefix, e.g. 'dev' for dev-1.0.0"`
	Suffix      string `short:"s" help:"Tag suffix, e.g. 'rc' for 1.0.0-rc"`
	Module      string `short:"m" help:"Module name for monorepo tags, e.g. 'api' for api-1.0.0"`
	Branch      string `short:"b" help:"Branch name appended to snapshot tags"`
	Snapshot    bool   `short:"i" help:"Produce a SNAPSHOT tag"`
	Bump        string `default:"patch" enum:"patch,minor,major" help:"Version component to increment"`
	Config      string `short:"c" help:"Path to optional YAML configuration file"`
	JSON        bool   `short:"j" help:"Output as JSON"`
	Debug       bool   `help:"Enable debug logging"`
	ShowVersion bool   `help:"Show version information" name:"version"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("nexttag"),
		kong.Description("Compute the next semantic version tag from existing repository tags and a baseline version file"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	if err := cli.Run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func (c *CLI) Run() error {
	if c.ShowVersion {
		return c.showVersion()
	}

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := c.applyConfig(); err != nil {
		return err
	}

	bump, err := nexttag.ParseBump(c.Bump)
	if err != nil {
		return err
	}

	scope, err := nexttag.NewScope(c.Prefix, c.Suffix, c.Module)
	if err != nil {
		return err
	}

	repo, err := nexttag.OpenRepository(c.Repo)
	if err != nil {
		return fmt.Errorf("opening repository %q: %w", c.Repo, err)
	}

	tags, err := nexttag.ListTags(repo)
	if err != nil {
		return err
	}
	log.Debug("scanned repository", "repo", c.Repo, "tags", len(tags), "scope", scope.Kind)

	result, err := nexttag.Resolve(nexttag.Options{
		Tags:        tags,
		VersionFile: c.VersionFile,
		Scope:       scope,
		Branch:      c.Branch,
		Snapshot:    c.Snapshot,
		Bump:        bump,
	})
	if err != nil {
		return err
	}
	log.Info("resolved", "current_tag", result.CurrentTag, "next_tag", result.NextTag)

	if err := writeGitHubOutput(result); err != nil {
		return err
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Println(result.NextTag)
	return nil
}

// applyConfig merges values from the optional YAML config file. Flags that
// were set explicitly always win over file values.
func (c *CLI) applyConfig() error {
	if c.Config == "" {
		return nil
	}

	cfg, err := nexttag.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	log.Debug("loaded configuration", "path", c.Config)

	if c.VersionFile == "" {
		c.VersionFile = cfg.VersionFile
	}
	if c.Prefix == "" && c.Suffix == "" && c.Module == "" {
		c.Prefix, c.Suffix, c.Module = cfg.Prefix, cfg.Suffix, cfg.Module
	}
	if cfg.Bump != "" && c.Bump == "patch" {
		c.Bump = cfg.Bump
	}
	return nil
}

// writeGitHubOutput appends the resolved tags to the file named by
// GITHUB_OUTPUT, the GitHub Actions output contract. A no-op outside CI.
func writeGitHubOutput(result *nexttag.Result) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "current_tag=%s\nnext_tag=%s\n", result.CurrentTag, result.NextTag); err != nil {
		return fmt.Errorf("writing GITHUB_OUTPUT: %w", err)
	}
	return nil
}

func (c *CLI) showVersion() error {
	versionInfo := map[string]string{
		"version": Version,
		"name":    "nexttag",
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(versionInfo)
	}

	fmt.Printf("nexttag version %s\n", Version)
	return nil
}
