package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"physlab/internal/config"
	"physlab/internal/problems"
	"physlab/internal/registry"
	"physlab/internal/viz"
)

func openStore() (*problems.Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return problems.Open(filepath.Join(dataDir, config.DefaultDBFile))
}

// deriveLabel builds the short display label stored with a problem, e.g.
// "throw (speed=20, height=0)".
func deriveLabel(modelID string, params map[string]float64) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%.4g", k, params[k])
	}
	return fmt.Sprintf("%s (%s)", modelID, strings.Join(parts, ", "))
}

func saveProblem(cmd *cobra.Command, args []string) error {
	params, err := parseSets(setFlags)
	if err != nil {
		return err
	}
	// Validate through the registry so degenerate configurations are
	// rejected before they reach the store.
	model, err := registry.Build(probModel, params)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	full := model.Params()
	id, err := store.Save(probTitle, probModel, full, deriveLabel(probModel, full))
	if err != nil {
		return err
	}
	fmt.Println("saved", id)
	return nil
}

func listProblems(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCONFIGURATION\tSAVED")
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Label, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func removeProblem(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ok, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no problem with id %s", args[0])
	}
	fmt.Println("removed", args[0])
	return nil
}

func playProblem(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.Get(args[0])
	if err != nil {
		return err
	}
	model, err := registry.Build(p.ModelID, p.Params)
	if err != nil {
		return err
	}
	return viz.Run(p.ModelID, model, fps, csvPath)
}
