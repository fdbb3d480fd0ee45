package migrate

// Migrations is the CRM schema in order.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "users, organisations and agents",
		SQL: `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		is_organisor BOOLEAN NOT NULL,
		is_agent BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organisations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS agents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		organisation_id UUID NOT NULL REFERENCES organisations(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_agents_organisation_id ON agents(organisation_id);
	`,
	},
	{
		Version:     2,
		Description: "categories and leads",
		SQL: `
	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		organisation_id UUID NOT NULL REFERENCES organisations(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_categories_organisation_id ON categories(organisation_id);

	CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		age INT NOT NULL DEFAULT 0,
		email TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		agent_id UUID REFERENCES agents(id) ON DELETE SET NULL,
		category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
		organisation_id UUID NOT NULL REFERENCES organisations(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_leads_organisation_id ON leads(organisation_id);
	CREATE INDEX IF NOT EXISTS idx_leads_agent_id ON leads(agent_id);
	CREATE INDEX IF NOT EXISTS idx_leads_category_id ON leads(category_id);
	`,
	},
	{
		Version:     3,
		Description: "activity log",
		SQL: `
	CREATE TABLE IF NOT EXISTS activity_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organisation_id UUID NOT NULL,
		actor_user_id UUID NOT NULL,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		details JSONB,
		request_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_activity_logs_org_created ON activity_logs(organisation_id, created_at DESC);
	`,
	},
}
