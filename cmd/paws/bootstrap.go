package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pawmatch/internal/assets"
	"pawmatch/internal/breed"
	"pawmatch/internal/config"
	"pawmatch/internal/convo"
	"pawmatch/internal/dialogue"
	"pawmatch/internal/explain"
	"pawmatch/internal/feature"
	"pawmatch/internal/identity"
)

// runtime bundles the process-wide read-only artifacts every command runs
// on: the loaded tables, the fitted feature space, the identity map, and
// the asset source. Built once at start-up; safe to share across sessions.
type runtime struct {
	cfg      *config.Config
	table    *breed.Table
	descs    map[string]string
	space    *feature.Space
	identity identity.Map
	source   *assets.Source
	composer *explain.Composer
}

// buildRuntime loads the data files, fits the feature space, and builds
// the breed identity map from the live asset listing. A listing failure is
// tolerated: the override table alone still yields a partial map and every
// gap degrades to "no image".
func buildRuntime(ctx context.Context, log *zap.Logger) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := breed.LoadTable(cfg.Data.BreedTraits)
	if err != nil {
		return nil, err
	}
	descs, err := breed.LoadDescriptions(cfg.Data.TraitDescriptions)
	if err != nil {
		return nil, err
	}

	space, err := feature.Fit(table)
	if err != nil {
		return nil, err
	}

	source := assets.NewSource(assets.SourceConfig{
		Owner:     cfg.Assets.Owner,
		Repo:      cfg.Assets.Repo,
		Branch:    cfg.Assets.Branch,
		ImageName: cfg.Assets.ImageName,
	}, log)

	folders, err := source.ListFolders(ctx)
	if err != nil {
		log.Warn("asset folder listing failed, relying on overrides only", zap.Error(err))
		folders = nil
	}
	idMap := identity.BuildMap(table.Names(), folders, identity.DefaultOverrides, log)

	return &runtime{
		cfg:      cfg,
		table:    table,
		descs:    descs,
		space:    space,
		identity: idMap,
		source:   source,
		composer: explain.NewComposer(table, descs, cfg.Match.TopTraits, log),
	}, nil
}

// buildEngine wires a conversation engine on top of the runtime artifacts.
func (rt *runtime) buildEngine(ctx context.Context, log *zap.Logger) (*convo.Engine, error) {
	if rt.cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("no API key: set GENAI_API_KEY or llm.api_key in %s", configPath)
	}

	geminiCfg := dialogue.DefaultGeminiConfig(rt.cfg.LLM.APIKey)
	geminiCfg.Model = rt.cfg.LLM.Model
	collab, err := dialogue.NewGemini(ctx, geminiCfg, log)
	if err != nil {
		return nil, err
	}

	return convo.NewEngine(convo.EngineConfig{
		Collaborator: collab,
		Space:        rt.space,
		Table:        rt.table,
		Composer:     rt.composer,
		Identity:     rt.identity,
		Assets:       rt.source,
		TopN:         rt.cfg.Match.TopN,
		MaxFrames:    rt.cfg.Assets.MaxFrames,
	}, log), nil
}
