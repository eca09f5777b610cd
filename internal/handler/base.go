package handler

// Form reads a fixed sequence of fields. After the first failed read the
// remaining Ask calls are skipped and Err reports that failure.
type Form struct {
	s   *Session
	err error
}

func (s *Session) Form() *Form {
	return &Form{s: s}
}

func (f *Form) Ask(label string, dst *string) {
	if f.err != nil {
		return
	}
	v, err := f.s.Prompt.Field(label)
	if err != nil {
		f.err = err
		return
	}
	*dst = v
}

func (f *Form) Say(text string) {
	if f.err != nil {
		return
	}
	f.s.Prompt.Println(text)
}

func (f *Form) Err() error {
	return f.err
}
