package imf

// Message is the top-level parse result: the ordered sequence of header
// Fields exactly as tokenized, plus the body byte range (nil both when the
// header block was never terminated by a blank line and when the blank
// line was the last thing in the input) (§4.9).
type Message struct {
	Fields []Field
	Body   []byte
}

// ParseMessage tokenizes the header block of data and captures everything
// after the header-terminating blank line as the body. It is the only
// entry point that can fail outright — a malformed field-name/colon line
// in the header block is the one fatal error in this engine; every
// field's own value is decoded lazily and degrades to FieldValue.Raw
// rather than failing the whole parse (§3, §4.7).
func ParseMessage(data []byte) (*Message, error) {
	s := newScanner(data)
	fields, bodyStart, err := readHeader(s)
	if err != nil {
		return nil, err
	}
	var body []byte
	if bodyStart < len(data) {
		body = data[bodyStart:]
	}
	return &Message{Fields: fields, Body: body}, nil
}

func (m *Message) field(kind FieldKind) (Field, bool) {
	for _, f := range m.Fields {
		if f.Kind == kind {
			return f, true
		}
	}
	return Field{}, false
}

func (m *Message) addressList(kind FieldKind) FieldValue[[]Address] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[[]Address]()
	}
	return decodeAddressList(f.Raw)
}

func (m *Message) mailbox(kind FieldKind) FieldValue[Mailbox] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[Mailbox]()
	}
	return decodeMailbox(f.Raw)
}

func (m *Message) dateTime(kind FieldKind) FieldValue[DateTime] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[DateTime]()
	}
	return decodeDateTime(f.Raw)
}

func (m *Message) messageID(kind FieldKind) FieldValue[MessageID] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[MessageID]()
	}
	return decodeMessageID(f.Raw)
}

func (m *Message) messageIDList(kind FieldKind) FieldValue[[]MessageID] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[[]MessageID]()
	}
	return decodeMessageIDList(f.Raw)
}

func (m *Message) unstructured(kind FieldKind) FieldValue[ByteRange] {
	f, ok := m.field(kind)
	if !ok {
		return fieldMissing[ByteRange]()
	}
	return decodeUnstructured(f.Raw)
}

func (m *Message) From() FieldValue[[]Address]          { return m.addressList(KindFrom) }
func (m *Message) ReplyTo() FieldValue[[]Address]       { return m.addressList(KindReplyTo) }
func (m *Message) To() FieldValue[[]Address]            { return m.addressList(KindTo) }
func (m *Message) Cc() FieldValue[[]Address]            { return m.addressList(KindCc) }
func (m *Message) Bcc() FieldValue[[]Address]           { return m.addressList(KindBcc) }
func (m *Message) ResentFrom() FieldValue[[]Address]    { return m.addressList(KindResentFrom) }
func (m *Message) ResentTo() FieldValue[[]Address]      { return m.addressList(KindResentTo) }
func (m *Message) ResentCc() FieldValue[[]Address]      { return m.addressList(KindResentCc) }
func (m *Message) ResentBcc() FieldValue[[]Address]     { return m.addressList(KindResentBcc) }
func (m *Message) ResentReplyTo() FieldValue[[]Address] { return m.addressList(KindResentReplyTo) }

func (m *Message) Sender() FieldValue[Mailbox]       { return m.mailbox(KindSender) }
func (m *Message) ResentSender() FieldValue[Mailbox] { return m.mailbox(KindResentSender) }
func (m *Message) ReturnPath() FieldValue[Mailbox]   { return m.mailbox(KindReturnPath) }

func (m *Message) Date() FieldValue[DateTime]       { return m.dateTime(KindDate) }
func (m *Message) ResentDate() FieldValue[DateTime] { return m.dateTime(KindResentDate) }

func (m *Message) MessageID() FieldValue[MessageID]       { return m.messageID(KindMessageID) }
func (m *Message) ResentMessageID() FieldValue[MessageID] { return m.messageID(KindResentMessageID) }

func (m *Message) InReplyTo() FieldValue[[]MessageID]  { return m.messageIDList(KindInReplyTo) }
func (m *Message) References() FieldValue[[]MessageID] { return m.messageIDList(KindReferences) }

func (m *Message) Subject() FieldValue[ByteRange]  { return m.unstructured(KindSubject) }
func (m *Message) Comments() FieldValue[ByteRange] { return m.unstructured(KindComments) }

func (m *Message) Keywords() FieldValue[[]ByteRange] {
	f, ok := m.field(KindKeywords)
	if !ok {
		return fieldMissing[[]ByteRange]()
	}
	return decodeKeywords(f.Raw)
}

func (m *Message) Received() []FieldValue[Received] {
	var out []FieldValue[Received]
	for _, f := range m.Fields {
		if f.Kind == KindReceived {
			out = append(out, decodeReceived(f.Raw))
		}
	}
	return out
}

func (m *Message) MIMEVersion() FieldValue[[2]int] {
	f, ok := m.field(KindMIMEVersion)
	if !ok {
		return fieldMissing[[2]int]()
	}
	return decodeMIMEVersion(f.Raw)
}

// ContentType returns the message's declared Content-Type, defaulting to
// text/plain when the field is absent (§4.10) rather than reporting
// Missing — the default is part of the field's own meaning, not the
// caller's concern.
func (m *Message) ContentType() FieldValue[ContentType] {
	f, ok := m.field(KindContentType)
	if !ok {
		return fieldOk(DefaultContentType)
	}
	return decodeContentType(f.Raw)
}

// Optional returns every Field classified outside the known set, in
// source order, with its original (case-preserved) name.
func (m *Message) Optional() []Field {
	var out []Field
	for _, f := range m.Fields {
		if f.Kind == KindOptional {
			out = append(out, f)
		}
	}
	return out
}
