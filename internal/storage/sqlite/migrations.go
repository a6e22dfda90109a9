package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: tables are created in dependency order because of foreign keys.
//
// Owner and creator identities are not foreign keys: accounts are managed by
// the auth layer and groups only record the caller id it yields.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    owner_user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS group_members (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    display_name TEXT NOT NULL,
    phone TEXT,
    linked_user_id TEXT,
    role TEXT NOT NULL CHECK (role IN ('owner', 'admin', 'member')),
    created_at INTEGER NOT NULL,
    UNIQUE (group_id, linked_user_id),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS split_transactions (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    created_by_user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('expense', 'income')),
    currency TEXT NOT NULL,
    total_amount_minor INTEGER NOT NULL CHECK (total_amount_minor >= 0),
    occurred_at INTEGER NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS split_transaction_items (
    id TEXT PRIMARY KEY,
    split_transaction_id TEXT NOT NULL,
    group_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    amount_minor INTEGER NOT NULL CHECK (amount_minor >= 0),
    direction TEXT NOT NULL CHECK (direction IN ('owes', 'gets')),
    position INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    UNIQUE (split_transaction_id, member_id),
    FOREIGN KEY (split_transaction_id) REFERENCES split_transactions(id) ON DELETE CASCADE,
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES group_members(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS notifications (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    split_transaction_id TEXT NOT NULL,
    to_member_id TEXT,
    to_user_id TEXT,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    is_read INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    CHECK (to_member_id IS NOT NULL OR to_user_id IS NOT NULL),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
    FOREIGN KEY (split_transaction_id) REFERENCES split_transactions(id) ON DELETE CASCADE,
    FOREIGN KEY (to_member_id) REFERENCES group_members(id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_group_members_one_owner ON group_members(group_id) WHERE role = 'owner';
CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members(group_id);
CREATE INDEX IF NOT EXISTS idx_group_members_linked_user_id ON group_members(linked_user_id);
CREATE INDEX IF NOT EXISTS idx_groups_owner_user_id ON groups(owner_user_id);
CREATE INDEX IF NOT EXISTS idx_split_transactions_group_occurred ON split_transactions(group_id, occurred_at DESC);
CREATE INDEX IF NOT EXISTS idx_split_items_split_id ON split_transaction_items(split_transaction_id);
CREATE INDEX IF NOT EXISTS idx_split_items_group_member ON split_transaction_items(group_id, member_id);
CREATE INDEX IF NOT EXISTS idx_split_items_member_id ON split_transaction_items(member_id);
CREATE INDEX IF NOT EXISTS idx_notifications_to_user_id ON notifications(to_user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_notifications_to_member_id ON notifications(to_member_id, created_at DESC);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
