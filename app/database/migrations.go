package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema on first run and applies incremental
// updates on existing databases.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			contrasena TEXT NOT NULL,
			nombre TEXT NOT NULL,
			telefono VARCHAR(20),
			id_rol INT NOT NULL DEFAULT 2,
			activo BOOLEAN NOT NULL DEFAULT true,
			token_recuperacion TEXT,
			token_expiracion TIMESTAMPTZ,
			token_usado BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sesiones (
			id UUID PRIMARY KEY,
			id_usuario UUID NOT NULL REFERENCES usuarios(id),
			expira_en TIMESTAMPTZ NOT NULL,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS municipios (
			id SERIAL PRIMARY KEY,
			nombre TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tipos_cultivo (
			id SERIAL PRIMARY KEY,
			nombre_cultivo TEXT UNIQUE NOT NULL,
			dias_ciclo INT NOT NULL DEFAULT 120,
			descripcion TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS tratamientos_predeterminados (
			id SERIAL PRIMARY KEY,
			id_tipo_cultivo INT NOT NULL REFERENCES tipos_cultivo(id),
			tipo_tratamiento TEXT NOT NULL,
			producto_usado TEXT,
			etapa TEXT,
			dosis TEXT,
			dias_desde_inicio INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS cultivos (
			id SERIAL PRIMARY KEY,
			id_usuario UUID NOT NULL REFERENCES usuarios(id),
			id_tipo_cultivo INT NOT NULL REFERENCES tipos_cultivo(id),
			id_municipio INT NOT NULL REFERENCES municipios(id),
			fecha_inicio DATE NOT NULL,
			fecha_fin DATE,
			id_estado_cultivo INT NOT NULL DEFAULT 1,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tratamientos (
			id SERIAL PRIMARY KEY,
			id_cultivo INT NOT NULL REFERENCES cultivos(id) ON DELETE CASCADE,
			tipo_tratamiento TEXT NOT NULL,
			producto_usado TEXT,
			etapa TEXT,
			dosis TEXT,
			observaciones TEXT,
			fecha_aplicacion_estimada DATE,
			fecha_realizacion DATE,
			estado TEXT NOT NULL DEFAULT 'Pendiente'
		)`,
		`CREATE TABLE IF NOT EXISTS animales (
			id SERIAL PRIMARY KEY,
			id_usuario UUID NOT NULL REFERENCES usuarios(id),
			especie TEXT NOT NULL,
			nombre TEXT,
			cantidad INT NOT NULL DEFAULT 1,
			estado_salud TEXT,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tickets_soporte (
			id SERIAL PRIMARY KEY,
			id_usuario UUID NOT NULL REFERENCES usuarios(id),
			asunto TEXT NOT NULL,
			mensaje TEXT NOT NULL,
			estado_ticket TEXT NOT NULL DEFAULT 'Abierto',
			creado_en TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			cerrado_en TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cultivos_usuario_estado ON cultivos (id_usuario, id_estado_cultivo)`,
		`CREATE INDEX IF NOT EXISTS idx_tratamientos_cultivo_fecha ON tratamientos (id_cultivo, fecha_aplicacion_estimada)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := addTreatmentCompletionColumn(db); err != nil {
		return err
	}

	if err := seedCatalogs(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedCatalogs inserts the municipality and crop type catalogs on a fresh
// database. Existing rows are left untouched.
func seedCatalogs(db *sql.DB) error {
	statements := []string{
		`INSERT INTO municipios (nombre) VALUES
			('Ibagué'), ('Espinal'), ('Melgar'), ('Honda'), ('Líbano'),
			('Chaparral'), ('Purificación'), ('Mariquita'), ('Fresno'), ('Guamo')
		 ON CONFLICT (nombre) DO NOTHING`,
		`INSERT INTO tipos_cultivo (nombre_cultivo, dias_ciclo, descripcion) VALUES
			('Tomate', 110, 'Tomate chonto de clima medio'),
			('Maíz', 130, 'Maíz amarillo tradicional'),
			('Arroz', 120, 'Arroz de riego'),
			('Café', 240, 'Café arábigo'),
			('Frijol', 90, 'Frijol arbustivo')
		 ON CONFLICT (nombre_cultivo) DO NOTHING`,
		`INSERT INTO tratamientos_predeterminados
			(id_tipo_cultivo, tipo_tratamiento, producto_usado, etapa, dosis, dias_desde_inicio)
		 SELECT t.id, d.tipo, d.producto, d.etapa, d.dosis, d.dias
		 FROM (VALUES
			('Tomate', 'Fertilización inicial', 'Triple 15', 'Siembra', '50 kg/ha', 0),
			('Tomate', 'Control de plagas', 'Lorsban', 'Vegetativa', '1 L/ha', 20),
			('Tomate', 'Fertilización foliar', 'Nutrifoliar', 'Floración', '2 L/ha', 45),
			('Tomate', 'Fungicida preventivo', 'Mancozeb', 'Fructificación', '2 kg/ha', 70),
			('Maíz', 'Fertilización inicial', 'Urea', 'Siembra', '100 kg/ha', 0),
			('Maíz', 'Control de maleza', 'Atrazina', 'Vegetativa', '1.5 L/ha', 25),
			('Maíz', 'Fertilización de cobertura', 'Urea', 'Desarrollo', '80 kg/ha', 50),
			('Arroz', 'Fertilización inicial', 'DAP', 'Siembra', '120 kg/ha', 0),
			('Arroz', 'Control de plagas', 'Cipermetrina', 'Macollamiento', '0.5 L/ha', 30),
			('Café', 'Fertilización inicial', 'Abono orgánico', 'Siembra', '2 kg/planta', 0),
			('Café', 'Control de broca', 'Beauveria bassiana', 'Fructificación', '1 kg/ha', 150),
			('Frijol', 'Fertilización inicial', 'Triple 15', 'Siembra', '40 kg/ha', 0),
			('Frijol', 'Fungicida preventivo', 'Benomil', 'Floración', '0.5 kg/ha', 40)
		 ) AS d(cultivo, tipo, producto, etapa, dosis, dias)
		 JOIN tipos_cultivo t ON t.nombre_cultivo = d.cultivo
		 WHERE NOT EXISTS (
			SELECT 1 FROM tratamientos_predeterminados p WHERE p.id_tipo_cultivo = t.id
		 )`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Catalog seed failed: %v", err)
			return err
		}
	}
	return nil
}

// addTreatmentCompletionColumn backfills fecha_realizacion on databases
// created before the completion flow existed.
func addTreatmentCompletionColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'tratamientos'
				AND column_name = 'fecha_realizacion'
			) THEN
				ALTER TABLE tratamientos ADD COLUMN fecha_realizacion DATE;
				RAISE NOTICE 'Added fecha_realizacion column to tratamientos';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for fecha_realizacion column: %v", err)
		return err
	}
	return nil
}
