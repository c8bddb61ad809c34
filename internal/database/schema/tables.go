// Package schema holds the baseline Synth schema.
//
// Every statement is idempotent so the list can run on each boot. Changes to
// existing tables go through internal/migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id UUID PRIMARY KEY,
		email VARCHAR(255),
		name VARCHAR(100) NOT NULL DEFAULT '',
		username VARCHAR(30),
		username_changed_at TIMESTAMPTZ,
		bio TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		birthday DATE,
		gender VARCHAR(50) NOT NULL DEFAULT '',
		location_city VARCHAR(255) NOT NULL DEFAULT '',
		location_state VARCHAR(50) NOT NULL DEFAULT '',
		account_type VARCHAR(20) NOT NULL DEFAULT 'user',
		streaming_connected BOOLEAN NOT NULL DEFAULT FALSE,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		trust_score INTEGER NOT NULL DEFAULT 0,
		verification_criteria JSONB,
		verified_at TIMESTAMPTZ,
		verified_by UUID,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		artist_id VARCHAR(255) NOT NULL DEFAULT '',
		artist_name VARCHAR(255) NOT NULL DEFAULT '',
		venue_id VARCHAR(255) NOT NULL DEFAULT '',
		venue_name VARCHAR(255) NOT NULL DEFAULT '',
		venue_city VARCHAR(255) NOT NULL DEFAULT '',
		venue_state VARCHAR(50) NOT NULL DEFAULT '',
		venue_address TEXT NOT NULL DEFAULT '',
		venue_zip VARCHAR(20) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		event_date TIMESTAMPTZ NOT NULL,
		doors_time TIMESTAMPTZ,
		description TEXT NOT NULL DEFAULT '',
		genres TEXT[] NOT NULL DEFAULT '{}',
		price_range VARCHAR(100) NOT NULL DEFAULT '',
		price_min NUMERIC(10,2),
		price_max NUMERIC(10,2),
		ticket_urls TEXT[] NOT NULL DEFAULT '{}',
		ticket_available BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(20) NOT NULL DEFAULT 'published',
		source VARCHAR(20) NOT NULL,
		external_id VARCHAR(255),
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (source, external_id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_interests (
		user_id UUID NOT NULL,
		event_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		event_id UUID NOT NULL,
		artist_id VARCHAR(255) NOT NULL DEFAULT '',
		venue_id VARCHAR(255) NOT NULL DEFAULT '',
		rating NUMERIC(2,1) NOT NULL,
		review_text TEXT NOT NULL DEFAULT '',
		was_there BOOLEAN NOT NULL DEFAULT FALSE,
		is_draft BOOLEAN NOT NULL DEFAULT FALSE,
		event_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS relationships (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		related_entity_type VARCHAR(20) NOT NULL,
		related_entity_id VARCHAR(255) NOT NULL,
		related_entity_name VARCHAR(255) NOT NULL DEFAULT '',
		relationship_type VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'accepted',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, related_entity_type, related_entity_id, relationship_type)
	)`,
	`CREATE TABLE IF NOT EXISTS user_swipes (
		swiper_user_id UUID NOT NULL,
		swiped_user_id UUID NOT NULL,
		event_id UUID NOT NULL,
		is_interested BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (swiper_user_id, swiped_user_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_matches (
		id UUID PRIMARY KEY,
		user1_id UUID NOT NULL,
		user2_id UUID NOT NULL,
		event_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user1_id, user2_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		type VARCHAR(30) NOT NULL,
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		data JSONB NOT NULL DEFAULT '{}'::jsonb,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_blocks (
		blocker_id UUID NOT NULL,
		blocked_id UUID NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (blocker_id, blocked_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		reporter_id UUID NOT NULL,
		content_type VARCHAR(20) NOT NULL,
		content_id VARCHAR(255) NOT NULL,
		reason VARCHAR(255) NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chats (
		id UUID PRIMARY KEY,
		chat_name VARCHAR(255) NOT NULL,
		chat_type VARCHAR(20) NOT NULL,
		entity_type VARCHAR(20),
		entity_id VARCHAR(255),
		created_by UUID,
		created_at TIMESTAMPTZ NOT NULL,
		last_activity_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_participants (
		chat_id UUID NOT NULL,
		user_id UUID NOT NULL,
		joined_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (chat_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		chat_id UUID NOT NULL,
		sender_id UUID NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS passport_entries (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		type VARCHAR(30) NOT NULL,
		entity_id VARCHAR(255),
		entity_uuid UUID,
		entity_name VARCHAR(255) NOT NULL,
		unlocked_at TIMESTAMPTZ NOT NULL,
		metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
		rarity VARCHAR(20) NOT NULL DEFAULT 'common'
	)`,
	`CREATE TABLE IF NOT EXISTS passport_identity (
		user_id UUID PRIMARY KEY,
		fan_type VARCHAR(30),
		home_scene_id VARCHAR(255),
		home_city VARCHAR(255) NOT NULL DEFAULT '',
		join_year INTEGER NOT NULL,
		calculated_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS passport_timeline (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		review_id UUID NOT NULL,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		is_auto_selected BOOLEAN NOT NULL DEFAULT FALSE,
		significance VARCHAR(200),
		description TEXT,
		event_name VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, review_id)
	)`,
	`CREATE TABLE IF NOT EXISTS passport_taste_map (
		user_id UUID PRIMARY KEY,
		genres JSONB NOT NULL DEFAULT '[]'::jsonb,
		artists JSONB NOT NULL DEFAULT '[]'::jsonb,
		fan_type VARCHAR(30),
		event_count INTEGER NOT NULL DEFAULT 0,
		calculated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS city_centers (
		id VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		state VARCHAR(50) NOT NULL DEFAULT '',
		normalized_name VARCHAR(255) NOT NULL DEFAULT '',
		aliases TEXT[] NOT NULL DEFAULT '{}',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		event_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// IndexDefinitions are created after every table exists
var IndexDefinitions = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username) WHERE username IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_venue_city ON events(lower(venue_city), lower(venue_state))`,
	`CREATE INDEX IF NOT EXISTS idx_events_genres ON events USING GIN (genres)`,
	`CREATE INDEX IF NOT EXISTS idx_event_interests_event_id ON event_interests(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_event_id ON reviews(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_relationships_related ON relationships(related_entity_type, related_entity_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_matches_event_id ON event_matches(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_chat_created ON messages(chat_id, created_at DESC)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_chats_verified_entity ON chats(entity_type, entity_id) WHERE chat_type = 'verified'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_passport_entries_uuid ON passport_entries(user_id, type, entity_uuid) WHERE entity_uuid IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_passport_entries_entity ON passport_entries(user_id, type, entity_id) WHERE entity_id IS NOT NULL`,
}

// TableNames returns a list of all table names in creation order
var TableNames = []string{
	"settings",
	"profiles",
	"events",
	"event_interests",
	"reviews",
	"relationships",
	"user_swipes",
	"event_matches",
	"notifications",
	"user_blocks",
	"reports",
	"chats",
	"chat_participants",
	"messages",
	"passport_entries",
	"passport_identity",
	"passport_timeline",
	"passport_taste_map",
	"city_centers",
}
