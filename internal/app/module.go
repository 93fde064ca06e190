package app

import (
	"time"

	"github.com/pslmedia/backoffice/internal/app/api/server"
	"github.com/pslmedia/backoffice/internal/app/service/auth"
	"github.com/pslmedia/backoffice/internal/app/service/billing"
	"github.com/pslmedia/backoffice/internal/app/service/catalog"
	"github.com/pslmedia/backoffice/internal/app/service/employee"
	"github.com/pslmedia/backoffice/internal/app/service/message"
	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/internal/platform/db"
	"github.com/pslmedia/backoffice/internal/platform/mail"
	"github.com/pslmedia/backoffice/pkg/clock"
	"github.com/pslmedia/backoffice/pkg/config"
	"github.com/pslmedia/backoffice/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	clock.Module,
	db.Module,
	mail.Module,
	server.Module,
	auth.Module,
	subscriber.Module,
	employee.Module,
	catalog.Module,
	billing.Module,
	message.Module,
)
