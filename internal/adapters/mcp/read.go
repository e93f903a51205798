package mcp

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"aliashist/internal/application"
	"aliashist/internal/config"
	"aliashist/internal/ports"
)

// RegisterReadTools adds the read-only alias-history tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, vault ports.Vault, editor ports.MetadataEditor, vaultPath string) {
	s.AddTool(aliasesTool(), aliasesHandler(vault, editor))
	s.AddTool(settingsTool(), settingsHandler(vaultPath))
	s.AddTool(statusTool(), statusHandler(editor, vaultPath))
}

// --- aliases ---

func aliasesTool() mcp.Tool {
	return mcp.NewTool("aliases",
		mcp.WithDescription("List the recorded aliases (prior names) of a vault file."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path of the file (e.g. projects/note.md)."),
			mcp.Required(),
		),
	)
}

func aliasesHandler(vault ports.Vault, editor ports.MetadataEditor) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		file := vault.Resolve(path)
		if file == nil {
			return toolError(fmt.Errorf("no such file: %s", path))
		}

		var aliases []string
		err := editor.Read(file.Path, func(meta ports.Metadata) {
			aliases, _ = meta.StringList(application.AliasKey)
		})
		if err != nil {
			return toolError(err)
		}

		if len(aliases) == 0 {
			return mcp.NewToolResultText("No aliases recorded."), nil
		}
		return mcp.NewToolResultText(strings.Join(aliases, "\n")), nil
	}
}

// --- settings ---

func settingsTool() mcp.Tool {
	return mcp.NewTool("settings",
		mcp.WithDescription("Show the current rename-tracking settings for the vault."),
	)
}

func settingsHandler(vaultPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		settings, err := config.Load(vaultPath)
		if err != nil {
			return toolError(err)
		}
		out, err := yaml.Marshal(settings)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Show vault counts: tracked files, files carrying aliases, and aliases recorded."),
	)
}

func statusHandler(editor ports.MetadataEditor, vaultPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		settings, err := config.Load(vaultPath)
		if err != nil {
			return toolError(err)
		}
		status, err := collectStatus(vaultPath, editor, settings)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Vault: %s\n", vaultPath)
		fmt.Fprintf(&sb, "Tracked files: %d\n", status.tracked)
		fmt.Fprintf(&sb, "Files with aliases: %d\n", status.aliased)
		fmt.Fprintf(&sb, "Aliases recorded: %d\n", status.aliases)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// vaultStatus counts the tracked files of a vault and the aliases they carry.
type vaultStatus struct {
	tracked int
	aliased int
	aliases int
}

func collectStatus(vaultPath string, editor ports.MetadataEditor, settings config.Settings) (vaultStatus, error) {
	var status vaultStatus
	err := filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(d.Name()), ".")
		if !slices.Contains(settings.TrackedExtensions, ext) {
			return nil
		}
		status.tracked++

		rel, err := filepath.Rel(vaultPath, path)
		if err != nil {
			return nil
		}
		_ = editor.Read(filepath.ToSlash(rel), func(meta ports.Metadata) {
			if list, ok := meta.StringList(application.AliasKey); ok && len(list) > 0 {
				status.aliased++
				status.aliases += len(list)
			}
		})
		return nil
	})
	return status, err
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
