package ode

// Cash-Karp embedded 4(5) tableau.
const (
	a2, a3, a4, a5, a6 = 0.2, 0.3, 0.6, 1.0, 0.875

	b21                     = 0.2
	b31, b32                = 3.0 / 40.0, 9.0 / 40.0
	b41, b42, b43           = 0.3, -0.9, 1.2
	b51, b52, b53, b54      = -11.0 / 54.0, 2.5, -70.0 / 27.0, 35.0 / 27.0
	b61, b62, b63, b64, b65 = 1631.0 / 55296.0, 175.0 / 512.0, 575.0 / 13824.0, 44275.0 / 110592.0, 253.0 / 4096.0

	c1, c3, c4, c6 = 37.0 / 378.0, 250.0 / 621.0, 125.0 / 594.0, 512.0 / 1771.0

	dc1 = c1 - 2825.0/27648.0
	dc3 = c3 - 18575.0/48384.0
	dc4 = c4 - 13525.0/55296.0
	dc5 = -277.0 / 14336.0
	dc6 = c6 - 0.25
)

type workspace struct {
	ak2, ak3, ak4, ak5, ak6 []float64
	tmp, yTemp, yErr        []float64
}

func newWorkspace(n int) *workspace {
	return &workspace{
		ak2: make([]float64, n), ak3: make([]float64, n), ak4: make([]float64, n),
		ak5: make([]float64, n), ak6: make([]float64, n),
		tmp: make([]float64, n), yTemp: make([]float64, n), yErr: make([]float64, n),
	}
}

// cashKarp advances y by h from x into yTemp and stores the error estimate in yErr.
func (w *workspace) cashKarp(f Function, y, dydx []float64, x, h float64) {
	for i := range y {
		w.tmp[i] = y[i] + b21*h*dydx[i]
	}
	f(x+a2*h, w.tmp, w.ak2)

	for i := range y {
		w.tmp[i] = y[i] + h*(b31*dydx[i]+b32*w.ak2[i])
	}
	f(x+a3*h, w.tmp, w.ak3)

	for i := range y {
		w.tmp[i] = y[i] + h*(b41*dydx[i]+b42*w.ak2[i]+b43*w.ak3[i])
	}
	f(x+a4*h, w.tmp, w.ak4)

	for i := range y {
		w.tmp[i] = y[i] + h*(b51*dydx[i]+b52*w.ak2[i]+b53*w.ak3[i]+b54*w.ak4[i])
	}
	f(x+a5*h, w.tmp, w.ak5)

	for i := range y {
		w.tmp[i] = y[i] + h*(b61*dydx[i]+b62*w.ak2[i]+b63*w.ak3[i]+b64*w.ak4[i]+b65*w.ak5[i])
	}
	f(x+a6*h, w.tmp, w.ak6)

	for i := range y {
		w.yTemp[i] = y[i] + h*(c1*dydx[i]+c3*w.ak3[i]+c4*w.ak4[i]+c6*w.ak6[i])
		w.yErr[i] = h * (dc1*dydx[i] + dc3*w.ak3[i] + dc4*w.ak4[i] + dc5*w.ak5[i] + dc6*w.ak6[i])
	}
}
