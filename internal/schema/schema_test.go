package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `generator client {
  provider = "prisma-client-js"
}

datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model User {
  id             String    @id @default(uuid())
  email          String    @unique
  name           String?
  // legacy column, kept for the mobile app
  googleId       String
  posts          Post[]
  created_at     DateTime  @default(now())
  updated_at     DateTime  @default(now()) @updatedAt

  @@map("users")
}

model Post {
  id      Int     @id @default(autoincrement())
  title   String!
  tags    String[]
  payload Json?
  blob    Bytes
  score   Float
  draft   Boolean @default(true)
}
`

func TestParseModelsInOrder(t *testing.T) {
	s := Parse(sampleSchema)
	require.Len(t, s.Models, 2)
	assert.Equal(t, []string{"User", "Post"}, s.Names())
}

func TestParseUserFields(t *testing.T) {
	user, err := Parse(sampleSchema).Find("User")
	require.NoError(t, err)
	require.Len(t, user.Fields, 7)

	id := user.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "string", id.MappedType)
	assert.True(t, id.IsID)
	assert.True(t, id.HasDefault)
	assert.False(t, id.IsOptional)

	email := user.Fields[1]
	assert.True(t, email.IsUnique)
	assert.False(t, email.IsID)

	name := user.Fields[2]
	assert.True(t, name.IsOptional)
	assert.Equal(t, "string", name.MappedType)

	posts := user.Fields[4]
	assert.Equal(t, "posts", posts.Name)
	assert.True(t, posts.IsArray)
	assert.False(t, posts.Type.Known())
	assert.Equal(t, "Post", posts.Type.Raw)
	assert.Equal(t, "any[]", posts.MappedType)

	created := user.Fields[5]
	assert.Equal(t, "Date", created.MappedType)
	assert.True(t, created.IsTimestamp())
	assert.False(t, id.IsTimestamp())
}

func TestParseTypeMapping(t *testing.T) {
	post, err := Parse(sampleSchema).Find("post")
	require.NoError(t, err)

	want := map[string]string{
		"id":      "number",
		"title":   "string",
		"tags":    "string[]",
		"payload": "any",
		"blob":    "Buffer",
		"score":   "number",
		"draft":   "boolean",
	}
	for _, f := range post.Fields {
		assert.Equal(t, want[f.Name], f.MappedType, f.Name)
	}

	title := post.Fields[1]
	assert.True(t, title.IsRequired)
	assert.False(t, title.IsOptional)
}

func TestParseWithoutModels(t *testing.T) {
	s := Parse("datasource db {\n  provider = \"postgresql\"\n}\n")
	assert.True(t, s.Empty())
	assert.Empty(t, s.Names())
}

func TestParseSkipsUnmatchedLines(t *testing.T) {
	s := Parse("model Order {\n  id String @id @default(uuid())\n  total Float\n  ???\n  @@index([total])\n}\n")
	require.Len(t, s.Models, 1)
	order := s.Models[0]
	require.Len(t, order.Fields, 2)
	assert.Equal(t, "total", order.Fields[1].Name)
	assert.Equal(t, "number", order.Fields[1].MappedType)

	id, ok := order.IDField()
	require.True(t, ok)
	assert.Equal(t, "id", id.Name)
}

func TestFindUnknownModel(t *testing.T) {
	_, err := Parse(sampleSchema).Find("Comment")
	assert.True(t, errors.Is(err, ErrModelNotFound))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "schema.prisma"))
	assert.True(t, errors.Is(err, ErrSchemaNotFound))

	path := filepath.Join(dir, "schema.prisma")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchema), 0o644))
	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Models, 2)
}
