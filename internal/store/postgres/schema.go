package postgres

import "fmt"

// schemaStatements creates the table, the two procedures and the insert trigger.
// Every statement is idempotent.
func schemaStatements(channel string) []string {
	return []string{
		`
		CREATE TABLE IF NOT EXISTS ai_model_prices (
			id BIGSERIAL PRIMARY KEY,
			model_name TEXT NOT NULL UNIQUE,
			input_price NUMERIC NOT NULL CHECK (input_price >= 0),
			output_price NUMERIC NOT NULL CHECK (output_price >= 0),
			provider TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
		`,
		`
		CREATE OR REPLACE FUNCTION get_all_model_prices()
		RETURNS TABLE (model_name TEXT, input_price NUMERIC, output_price NUMERIC, provider TEXT)
		LANGUAGE sql STABLE AS $$
			SELECT p.model_name, p.input_price, p.output_price, p.provider
			FROM ai_model_prices p
			ORDER BY p.id
		$$
		`,
		`
		CREATE OR REPLACE FUNCTION upsert_model_price(
			p_model_name TEXT,
			p_input_price NUMERIC,
			p_output_price NUMERIC,
			p_provider TEXT
		)
		RETURNS TABLE (model_name TEXT, input_price NUMERIC, output_price NUMERIC, provider TEXT)
		LANGUAGE sql AS $$
			INSERT INTO ai_model_prices AS t (model_name, input_price, output_price, provider)
			VALUES (p_model_name, p_input_price, p_output_price, p_provider)
			ON CONFLICT ON CONSTRAINT ai_model_prices_model_name_key DO UPDATE SET
				input_price = EXCLUDED.input_price,
				output_price = EXCLUDED.output_price,
				provider = EXCLUDED.provider,
				updated_at = now()
			RETURNING t.model_name, t.input_price, t.output_price, t.provider
		$$
		`,
		fmt.Sprintf(`
		CREATE OR REPLACE FUNCTION notify_ai_model_price_insert()
		RETURNS trigger
		LANGUAGE plpgsql AS $$
		BEGIN
			PERFORM pg_notify('%s', json_build_object(
				'model_name', NEW.model_name,
				'input_price', NEW.input_price,
				'output_price', NEW.output_price,
				'provider', NEW.provider
			)::text);
			RETURN NEW;
		END;
		$$
		`, channel),
		`DROP TRIGGER IF EXISTS ai_model_prices_insert_notify ON ai_model_prices`,
		`
		CREATE TRIGGER ai_model_prices_insert_notify
		AFTER INSERT ON ai_model_prices
		FOR EACH ROW EXECUTE FUNCTION notify_ai_model_price_insert()
		`,
	}
}
