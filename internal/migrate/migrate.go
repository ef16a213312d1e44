package migrate

import (
	"context"

	"github.com/esc4n0rx/Integra/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto, pg_trgm
	CreateChecks           bool // CHECK-constraint для целостности
	CreateIndexes          bool // индексы для фильтров отчётов
	CreateFKsViaSQL        bool // FK через SQL (поверх GORM-constraint)
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateIntegraDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных integra")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
			log.Error("Не удалось включить расширение pg_trgm", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц integracao_itens, integracao_pedidos и integracao_pedidos_itens")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.CatalogItem{},
		&models.Order{},
		&models.OrderLineItem{},
	); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_integracao_pedidos_updated ON integracao_pedidos;
CREATE TRIGGER trg_integracao_pedidos_updated
BEFORE UPDATE ON integracao_pedidos
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_integracao_itens_updated ON integracao_itens;
CREATE TRIGGER trg_integracao_itens_updated
BEFORE UPDATE ON integracao_itens
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("Не удалось создать триггер updated_at", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		// Статусы (храним TEXT)
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE integracao_pedidos
  DROP CONSTRAINT IF EXISTS chk_pedidos_status_allowed;
ALTER TABLE integracao_pedidos
  ADD CONSTRAINT chk_pedidos_status_allowed
  CHECK (status IN ('Pendente','Em Processamento','Separado','Entregue','Cancelado'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов", zap.Error(err))
			return err
		}

		// Количество > 0
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE integracao_pedidos_itens
  DROP CONSTRAINT IF EXISTS chk_pedidos_itens_quantidade_gt_zero;
ALTER TABLE integracao_pedidos_itens
  ADD CONSTRAINT chk_pedidos_itens_quantidade_gt_zero
  CHECK (quantidade > 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для quantidade", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		// Выборки отчётов: по дате, по подстроке кода/солиситанта
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_integracao_pedidos_data
ON integracao_pedidos (data DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_integracao_pedidos_data", zap.Error(err))
			return err
		}
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_integracao_itens_codigo_trgm
ON integracao_itens USING gin (lower(codigo) gin_trgm_ops);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_integracao_itens_codigo_trgm", zap.Error(err))
			return err
		}
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_integracao_itens_descricao_trgm
ON integracao_itens USING gin (lower(descricao) gin_trgm_ops);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_integracao_itens_descricao_trgm", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		// integracao_pedidos_itens.pedido_id -> integracao_pedidos.id (CASCADE)
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE integracao_pedidos_itens
  DROP CONSTRAINT IF EXISTS fk_pedidos_itens_pedido,
  ADD CONSTRAINT fk_pedidos_itens_pedido
    FOREIGN KEY (pedido_id) REFERENCES integracao_pedidos(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK pedido_id -> integracao_pedidos.id", zap.Error(err))
			return err
		}
	}

	log.Info("Миграция базы данных integra успешно завершена")
	return nil
}
