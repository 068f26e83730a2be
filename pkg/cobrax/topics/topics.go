// Package topics provides a topic-based help system for Cobra CLI
// applications. Topics are plain text or markdown files read from an fs.FS,
// usually an embedded directory, and are reachable through `help <topic>`.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys         fs.FS
	root         string
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a new TopicManager reading topics below root in fsys
func New(fsys fs.FS, root string) *TopicManager {
	return NewWithOptions(fsys, root, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(fsys fs.FS, root string, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		root:       root,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// scanTopics loads every file with a supported extension
func (tm *TopicManager) scanTopics() error {
	if _, err := fs.Stat(tm.fsys, tm.root); err != nil {
		// No topics directory means no topics
		return nil
	}

	return fs.WalkDir(tm.fsys, tm.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names (--pretty) also
// match "option-" topics.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}

	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all topic names in order
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// Initialize sets up the topic-based help system with default options
func Initialize(rootCmd *cobra.Command, fsys fs.FS, root string) error {
	return InitializeWithOptions(rootCmd, fsys, root, Options{})
}

// InitializeWithOptions replaces the root command's help command and help
// function with topic-aware versions
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, root string, opts Options) error {
	tm := NewWithOptions(fsys, root, opts)
	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				tm.printTopicList(cmd, rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				_, _ = fmt.Fprint(out, tm.Render(topic))
				return
			}

			// Not a topic: show help for the named command
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				tm.originalHelp(rootCmd, args)
				return
			}
			tm.originalHelp(target, []string{})
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return nil
}

func (tm *TopicManager) printTopicList(cmd *cobra.Command, appName string) {
	out := cmd.OutOrStdout()
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}
