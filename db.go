package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MichaelLJp/customer-orders/entity"
)

func setupDatabase(cfg appConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Order{},
	); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	log.WithFields(log.Fields{"host": cfg.DBHost, "dbname": cfg.DBName}).Info("database ready")
	return db
}
