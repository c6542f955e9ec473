package models

// CreateUserForm - данные формы создания пользователя.
// Единственная валидируемая форма: имя и фамилия обязательны.
type CreateUserForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	ImageURL  string
}

// WithDefaults подставляет картинку-заглушку вместо пустого image_url
func (f CreateUserForm) WithDefaults() CreateUserForm {
	if f.ImageURL == "" {
		f.ImageURL = DefaultImageURL
	}
	return f
}

// UpdateUserForm - частичное обновление: пустое поле формы
// сохраняет прежнее значение, непустое перезаписывает его целиком
type UpdateUserForm struct {
	FirstName string
	LastName  string
	ImageURL  string
}

func (f UpdateUserForm) Merge(u User) User {
	if f.FirstName != "" {
		u.FirstName = f.FirstName
	}
	if f.LastName != "" {
		u.LastName = f.LastName
	}
	if f.ImageURL != "" {
		u.ImageURL = f.ImageURL
	}
	return u
}

// PostForm - заголовок и текст поста. При создании не валидируется:
// пустые значения дойдут до БД и упадут на NOT NULL
type PostForm struct {
	Title   string
	Content string
}

// Merge не трогает created_at, user_id и id
func (f PostForm) Merge(p Post) Post {
	if f.Title != "" {
		p.Title = f.Title
	}
	if f.Content != "" {
		p.Content = f.Content
	}
	return p
}

// TagForm - имя тега из поля формы "tag"
type TagForm struct {
	Name string
}

func (f TagForm) Merge(t Tag) Tag {
	if f.Name != "" {
		t.Name = f.Name
	}
	return t
}
