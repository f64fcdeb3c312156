package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"openflexSite/internal/config"
	"openflexSite/internal/content"
	"openflexSite/internal/database"
)

// 站点初始内容。已有数据一律不覆盖，重复执行是安全的。
func main() {
	cfg := config.MustLoad()

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	ctx := context.Background()
	store := content.NewStore(db)

	if err := seedHero(ctx, store); err != nil {
		log.Fatalf("seed hero: %v", err)
	}
	if err := seedAbout(ctx, store); err != nil {
		log.Fatalf("seed about: %v", err)
	}
	if err := seedContact(ctx, store); err != nil {
		log.Fatalf("seed contact: %v", err)
	}
	if err := seedServices(ctx, store); err != nil {
		log.Fatalf("seed services: %v", err)
	}
	if err := seedFAQs(ctx, store); err != nil {
		log.Fatalf("seed faqs: %v", err)
	}

	log.Printf("database seeded")
}

func seedHero(ctx context.Context, store *content.Store) error {
	_, err := store.Hero(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = store.SaveHero(ctx, content.HeroInput{
		Title:    "Expert Financial & Legal Guidance for Everyone",
		Subtitle: "Democratizing professional financial, compliance, and investment services.",
	})
	return err
}

func seedAbout(ctx context.Context, store *content.Store) error {
	_, err := store.About(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = store.SaveAbout(ctx, content.AboutInput{
		Title:       "About OpenFlex",
		Description: "We are a leading consultancy firm providing comprehensive financial, legal, and investment services to businesses and individuals.",
	})
	return err
}

func seedContact(ctx context.Context, store *content.Store) error {
	_, err := store.Contact(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = store.SaveContact(ctx, "info@openflex.com", "+1 (555) 123-4567")
	return err
}

func seedServices(ctx context.Context, store *content.Store) error {
	existing, err := store.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	services := []content.ServiceInput{
		{
			Title:       "Algorithmic Trading",
			Description: "Advanced algorithmic trading strategies for optimal market performance.",
			Features:    "Real-time analysis, Risk management, Performance optimization",
		},
		{
			Title:       "Investment Advisory",
			Description: "Personalized investment strategies tailored to your financial goals.",
			Features:    "Portfolio analysis, Market research, Risk assessment",
		},
		{
			Title:       "Compliance Services",
			Description: "Comprehensive compliance solutions for regulatory requirements.",
			Features:    "Regulatory updates, Audit support, Policy development",
		},
	}
	for _, s := range services {
		if _, err := store.CreateService(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedFAQs(ctx context.Context, store *content.Store) error {
	existing, err := store.ListFAQs(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	faqs := []content.FAQInput{
		{
			Question: "What services does OpenFlex provide?",
			Answer:   "We provide financial advisory, compliance, and investment services for businesses and individuals.",
		},
		{
			Question: "How do I get started?",
			Answer:   "Reach out through the contact section and our team will schedule an introductory consultation.",
		},
	}
	for _, f := range faqs {
		if _, err := store.CreateFAQ(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
