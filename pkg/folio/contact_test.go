package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
)

func newTestContactPage(t *testing.T) *contactPage {
	t.Helper()
	content, err := LoadContent("")
	require.NoError(t, err)
	return newContactPage(5, content)
}

func TestContactValidation(t *testing.T) {
	page := newTestContactPage(t)

	assert.Equal(t, "contact.missing_fields", page.validate())

	page.values = [3]string{"Ada", "not-an-email", "Hello there"}
	assert.Equal(t, "contact.invalid_email", page.validate())

	page.values = [3]string{"Ada", "ada@example.dev", "Hello there"}
	assert.Equal(t, "", page.validate())

	// Whitespace-only fields count as missing.
	page.values = [3]string{"Ada", "ada@example.dev", "   "}
	assert.Equal(t, "contact.missing_fields", page.validate())
}

func TestContactEmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.example.org", "x+tag@example.dev"}
	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), email)
	}

	invalid := []string{"", "plain", "a@b", "a b@c.de", "@example.com", "a@"}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), email)
	}
}

func TestContactSubmitConfirmsThenClears(t *testing.T) {
	initLocales("en")
	Stats().Reset()
	page := newTestContactPage(t)
	page.message.inputDelay = 0
	page.values = [3]string{" Ada ", "ada@example.dev", "Let's build something."}

	page.submit(time.Now())

	require.True(t, page.message.Visible(), "a valid submit asks for confirmation first")
	require.True(t, page.confirming)
	assert.Nil(t, page.lastSubmit)

	// Confirm with the default Send option.
	page.HandleInput(pressEvent(constants.VirtualButtonA), time.Now())

	require.NotNil(t, page.lastSubmit)
	assert.Len(t, page.lastSubmit.ReceiptID, 8)
	assert.Equal(t, "Ada", page.lastSubmit.Name, "submitted values are trimmed")
	assert.Equal(t, [3]string{}, page.values, "a confirmed submit clears the form")
	assert.False(t, page.confirming)
	assert.True(t, page.message.Visible(), "the sent notice replaces the confirmation")
	assert.Equal(t, int64(1), Stats().FormSubmits.Load())
}

func TestContactSubmitDeclineKeepsValues(t *testing.T) {
	initLocales("en")
	Stats().Reset()
	page := newTestContactPage(t)
	page.message.inputDelay = 0
	page.values = [3]string{"Ada", "ada@example.dev", "Hi"}

	page.submit(time.Now())
	require.True(t, page.confirming)

	// Back out of the confirmation.
	page.HandleInput(pressEvent(constants.VirtualButtonB), time.Now())

	assert.False(t, page.confirming)
	assert.False(t, page.message.Visible())
	assert.Nil(t, page.lastSubmit)
	assert.Equal(t, "Ada", page.values[contactFieldName], "declining keeps the typed values")
	assert.Equal(t, int64(0), Stats().FormSubmits.Load())
}

func TestContactSubmitCancelOptionDeclines(t *testing.T) {
	initLocales("en")
	Stats().Reset()
	page := newTestContactPage(t)
	page.message.inputDelay = 0
	page.values = [3]string{"Ada", "ada@example.dev", "Hi"}

	page.submit(time.Now())
	page.HandleInput(pressEvent(constants.VirtualButtonRight), time.Now())
	page.HandleInput(pressEvent(constants.VirtualButtonA), time.Now())

	assert.Nil(t, page.lastSubmit)
	assert.False(t, page.message.Visible())
	assert.Equal(t, int64(0), Stats().FormSubmits.Load())
}

func TestContactSubmitRejectsInvalidForm(t *testing.T) {
	initLocales("en")
	Stats().Reset()
	page := newTestContactPage(t)
	page.values = [3]string{"Ada", "bad-email", "Hi"}

	page.submit(time.Now())

	assert.Nil(t, page.lastSubmit)
	assert.Equal(t, "Ada", page.values[contactFieldName], "a rejected submit keeps the input")
	assert.True(t, page.message.Visible())
	assert.Equal(t, int64(0), Stats().FormSubmits.Load())
}

func TestContactActivateResetsForm(t *testing.T) {
	page := newTestContactPage(t)
	page.values = [3]string{"Ada", "ada@example.dev", "Hi"}
	page.focused = contactFieldSend

	page.Activate()

	assert.Equal(t, [3]string{}, page.values)
	assert.Equal(t, contactFieldName, page.focused)
}

func TestContactReceiptsAreUnique(t *testing.T) {
	initLocales("en")
	page := newTestContactPage(t)

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		page.values = [3]string{"Ada", "ada@example.dev", "Hi"}
		require.NoError(t, page.finishSubmit(true))
		require.NotNil(t, page.lastSubmit)
		assert.False(t, seen[page.lastSubmit.ReceiptID])
		seen[page.lastSubmit.ReceiptID] = true
		page.message.visible = false
	}
}

func TestContactFinishSubmitDeclined(t *testing.T) {
	page := newTestContactPage(t)
	page.values = [3]string{"Ada", "ada@example.dev", "Hi"}

	err := page.finishSubmit(false)

	assert.ErrorIs(t, err, ErrFormCancelled)
	assert.True(t, IsCancelled(err))
	assert.Nil(t, page.lastSubmit)
}

func TestContactEnterAdvancesToNextField(t *testing.T) {
	initLocales("en")
	page := newTestContactPage(t)
	page.focused = contactFieldName
	page.editing = contactFieldName
	openForTest(page.keyboard, "Ada", page.fieldMaxLength(contactFieldName))

	// Commit the name field from the keyboard's enter key.
	page.keyboard.selRow = 2
	page.keyboard.selCol = len(page.keyboard.rowCells(2)) - 1
	consumed := page.HandleInput(pressEvent(constants.VirtualButtonA), time.Now())

	require.True(t, consumed)
	assert.Equal(t, "Ada", page.values[contactFieldName])
	assert.Equal(t, contactFieldEmail, page.focused)
	assert.Equal(t, contactFieldEmail, page.editing)
	assert.True(t, page.keyboard.Visible(), "the next field opens for editing")
	assert.Equal(t, "", page.keyboard.Value())
}
