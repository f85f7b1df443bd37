package main

import (
	"log"
	"net/http"

	"seoagent/api"
	"seoagent/capability"
	"seoagent/competitors"
	"seoagent/config"
	"seoagent/events"
	"seoagent/keywords"
	"seoagent/llm"
	"seoagent/orchestrator"
	"seoagent/rewriter"
	"seoagent/scraper"
	"seoagent/volume"
)

func main() {
	cfg := config.Load()

	model, err := llm.NewCohereClient(cfg.CohereAPIKey, cfg.CohereModel)
	if err != nil {
		log.Fatalf("Failed to initialize language model client: %v", err)
	}

	fetcher := scraper.NewFetcher()
	volumes := volume.NewService(cfg, model)
	extractor := keywords.NewExtractor(fetcher, model, volumes, cfg.ExcludedTerms)
	matcher := capability.NewMatcher(model, fetcher)
	rw := rewriter.New(model, cfg.RewriteChunkSize)
	directory := competitors.NewDirectory(config.ProductCompetitors, config.ProductOrder)

	var publisher orchestrator.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := events.NewPublisher(events.PublisherConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Printf("Warning: Kafka publisher disabled: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	orch := orchestrator.New(directory, extractor, matcher, rw, publisher, config.ProductURLPatterns)

	addr := ":" + cfg.Port
	r := api.NewRouter(orch)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/products")
	log.Println("  GET  /api/products/:product/competitors")
	log.Println("  POST /api/analyze")
	log.Println("  POST /api/rewrite")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
