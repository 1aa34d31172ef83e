package geom

// Matrix4Stack is a GL style matrix stack. The bottom entry can not be popped.
type Matrix4Stack struct {
	stack []Matrix4
}

func NewMatrix4Stack() *Matrix4Stack {
	return &Matrix4Stack{stack: []Matrix4{NewMatrix4()}}
}

// Push duplicates the top matrix.
func (s *Matrix4Stack) Push() {
	if len(s.stack) == 0 {
		s.stack = append(s.stack, NewMatrix4())
	}
	s.stack = append(s.stack, s.Top())
}

func (s *Matrix4Stack) Pop() error {
	if len(s.stack) <= 1 {
		return ErrStackUnderflow
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *Matrix4Stack) Top() Matrix4 {
	if len(s.stack) == 0 {
		return NewMatrix4()
	}
	return s.stack[len(s.stack)-1]
}

// Load replaces the top matrix.
func (s *Matrix4Stack) Load(m Matrix4) {
	if len(s.stack) == 0 {
		s.stack = append(s.stack, m)
		return
	}
	s.stack[len(s.stack)-1] = m
}

func (s *Matrix4Stack) LoadIdentity() {
	s.Load(NewMatrix4())
}

// Multiply sets top = top * m, so m applies before everything already on top.
func (s *Matrix4Stack) Multiply(m Matrix4) {
	s.Load(s.Top().Mul(m))
}

func (s *Matrix4Stack) Translate(x, y, z Element) {
	s.Multiply(NewTranslateMatrix4(x, y, z))
}

func (s *Matrix4Stack) Scale(x, y, z Element) {
	s.Multiply(NewScaleMatrix4(x, y, z))
}

// Rotate multiplies by a rotation of radians around a unit axis.
func (s *Matrix4Stack) Rotate(axis Vector3, radians Element) {
	s.Multiply(NewAxisAngleMatrix4(axis, radians))
}

// Depth returns the number of entries, including the base.
func (s *Matrix4Stack) Depth() int {
	if len(s.stack) == 0 {
		return 1
	}
	return len(s.stack)
}
