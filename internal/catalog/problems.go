package catalog

var problems = []Problem{
	{
		ID:            1,
		Question:      "Si el 40% de los estudiantes de un grupo practica fútbol y el 60% del resto practica béisbol, ¿qué porcentaje del grupo practica béisbol?",
		Options:       []string{"24%", "36%", "40%", "60%"},
		Correct:       "36%",
		Explanation:   "Si 40% practica fútbol, entonces 60% no practica fútbol. De ese 60%, el 60% practica béisbol: 0.60 × 0.60 = 0.36 = 36%",
		Subject:       Arithmetic,
		Visualization: "percentage",
	},
	{
		ID:            2,
		Question:      "Si 5 trabajadores construyen una pared en 12 días, ¿cuántos días tardarán 15 trabajadores en construir la misma pared?",
		Options:       []string{"3", "4", "6", "8"},
		Correct:       "4",
		Explanation:   "Trabajo total = 5 × 12 = 60 días-trabajador. Con 15 trabajadores: 60 ÷ 15 = 4 días",
		Subject:       Arithmetic,
		Visualization: "workers",
	},
	{
		ID:            3,
		Question:      "La suma de dos números es 45 y su diferencia es 11. ¿Cuál es el número mayor?",
		Options:       []string{"17", "28", "34", "39"},
		Correct:       "28",
		Explanation:   "x + y = 45 y x - y = 11. Sumando: 2x = 56, x = 28. Por lo tanto y = 17, el mayor es 28",
		Subject:       Algebra,
		Visualization: "equation",
	},
	{
		ID:            4,
		Question:      "Si √(x² - 6x + 9) = 3, entonces x =",
		Options:       []string{"0", "3", "6", "0 o 6"},
		Correct:       "0 o 6",
		Explanation:   "x² - 6x + 9 = (x - 3)² = 9, entonces |x - 3| = 3. Esto da x - 3 = 3 o x - 3 = -3, por lo tanto x = 6 o x = 0",
		Subject:       Algebra,
		Visualization: "parabola",
	},
	{
		ID:            5,
		Question:      "En un triángulo rectángulo, si los catetos miden 3 y 4, ¿cuánto mide la hipotenusa?",
		Options:       []string{"5", "7", "12", "25"},
		Correct:       "5",
		Explanation:   "Por el teorema de Pitágoras: h² = 3² + 4² = 9 + 16 = 25, entonces h = 5",
		Subject:       Geometry,
		Visualization: "triangle",
	},
	{
		ID:            6,
		Question:      "El área de un círculo es 36π. ¿Cuál es su perímetro?",
		Options:       []string{"6π", "12π", "18π", "36π"},
		Correct:       "12π",
		Explanation:   "Área = πr² = 36π, entonces r² = 36, r = 6. Perímetro = 2πr = 2π(6) = 12π",
		Subject:       Geometry,
		Visualization: "circle",
	},
	{
		ID:            7,
		Question:      "Si lanzamos dos dados, ¿cuál es la probabilidad de obtener una suma de 7?",
		Options:       []string{"1/12", "1/6", "1/4", "1/3"},
		Correct:       "1/6",
		Explanation:   "Casos favorables: (1,6), (2,5), (3,4), (4,3), (5,2), (6,1) = 6 casos. Total de casos = 36. P = 6/36 = 1/6",
		Subject:       Probability,
		Visualization: "dice",
	},
	{
		ID:            8,
		Question:      "Si f(x) = 2x - 3 y g(x) = x², entonces g(f(2)) =",
		Options:       []string{"1", "4", "9", "16"},
		Correct:       "1",
		Explanation:   "f(2) = 2(2) - 3 = 1. g(f(2)) = g(1) = 1² = 1",
		Subject:       Algebra,
		Visualization: "function",
	},
	{
		ID:            9,
		Question:      "Un rectángulo tiene perímetro 20 y área 21. ¿Cuáles son sus dimensiones?",
		Options:       []string{"3 y 7", "4 y 6", "2 y 8", "1 y 9"},
		Correct:       "3 y 7",
		Explanation:   "2(l + w) = 20, entonces l + w = 10. l × w = 21. Resolviendo: l = 7, w = 3",
		Subject:       Geometry,
		Visualization: "rectangle",
	},
	{
		ID:            10,
		Question:      "Si log₂(x) = 3, entonces x =",
		Options:       []string{"6", "8", "9", "16"},
		Correct:       "8",
		Explanation:   "log₂(x) = 3 significa 2³ = x, entonces x = 8",
		Subject:       Algebra,
		Visualization: "exponential",
	},
	{
		ID:            11,
		Question:      "La media de 5 números es 12. Si agregamos un sexto número que es 18, ¿cuál es la nueva media?",
		Options:       []string{"12", "13", "14", "15"},
		Correct:       "13",
		Explanation:   "Suma original = 5 × 12 = 60. Nueva suma = 60 + 18 = 78. Nueva media = 78 ÷ 6 = 13",
		Subject:       Arithmetic,
		Visualization: "average",
	},
	{
		ID:            12,
		Question:      "¿Cuántas diagonales tiene un hexágono?",
		Options:       []string{"6", "9", "12", "15"},
		Correct:       "9",
		Explanation:   "Número de diagonales = n(n-3)/2 = 6(6-3)/2 = 6×3/2 = 9",
		Subject:       Geometry,
		Visualization: "polygon",
	},
	{
		ID:            13,
		Question:      "Si 3^(x+1) = 27, entonces x =",
		Options:       []string{"1", "2", "3", "4"},
		Correct:       "2",
		Explanation:   "3^(x+1) = 27 = 3³, entonces x + 1 = 3, x = 2",
		Subject:       Algebra,
		Visualization: "exponential",
	},
	{
		ID:            14,
		Question:      "Un tanque se llena con una llave en 6 horas y se vacía con otra en 9 horas. Si ambas llaves están abiertas, ¿en cuánto tiempo se llena?",
		Options:       []string{"15 horas", "18 horas", "20 horas", "24 horas"},
		Correct:       "18 horas",
		Explanation:   "Velocidad de llenado = 1/6 - 1/9 = 3/18 - 2/18 = 1/18 tanque/hora. Tiempo = 18 horas",
		Subject:       Arithmetic,
		Visualization: "tank",
	},
	{
		ID:            15,
		Question:      "El volumen de un cubo es 125 cm³. ¿Cuál es el área de una de sus caras?",
		Options:       []string{"5 cm²", "25 cm²", "125 cm²", "625 cm²"},
		Correct:       "25 cm²",
		Explanation:   "V = a³ = 125, entonces a = 5 cm. Área de una cara = a² = 25 cm²",
		Subject:       Geometry,
		Visualization: "cube",
	},
	{
		ID:            16,
		Question:      "Si x² - 5x + 6 = 0, entonces los valores de x son:",
		Options:       []string{"1 y 6", "2 y 3", "-2 y -3", "-1 y -6"},
		Correct:       "2 y 3",
		Explanation:   "Factorizando: (x - 2)(x - 3) = 0, entonces x = 2 o x = 3",
		Subject:       Algebra,
		Visualization: "parabola",
	},
	{
		ID:            17,
		Question:      "En una urna hay 4 bolas rojas y 6 azules. Si sacamos 2 bolas sin reemplazo, ¿cuál es la probabilidad de que ambas sean rojas?",
		Options:       []string{"2/15", "4/25", "6/45", "8/45"},
		Correct:       "2/15",
		Explanation:   "P(primera roja) = 4/10, P(segunda roja|primera roja) = 3/9. P(ambas rojas) = 4/10 × 3/9 = 12/90 = 2/15",
		Subject:       Probability,
		Visualization: "balls",
	},
	{
		ID:            18,
		Question:      "Si sen(θ) = 3/5 y θ está en el primer cuadrante, entonces cos(θ) =",
		Options:       []string{"2/5", "3/5", "4/5", "5/5"},
		Correct:       "4/5",
		Explanation:   "sen²(θ) + cos²(θ) = 1. (3/5)² + cos²(θ) = 1. cos²(θ) = 16/25. Como θ está en el primer cuadrante, cos(θ) = 4/5",
		Subject:       Geometry,
		Visualization: "trigonometry",
	},
	{
		ID:            19,
		Question:      "La sucesión 2, 6, 18, 54, ... es una progresión geométrica. ¿Cuál es el quinto término?",
		Options:       []string{"108", "162", "216", "324"},
		Correct:       "162",
		Explanation:   "La razón es r = 3. El quinto término = 2 × 3⁴ = 2 × 81 = 162",
		Subject:       Algebra,
		Visualization: "sequence",
	},
	{
		ID:            20,
		Question:      "Un comerciante vende un artículo con 20% de ganancia. Si lo vendió en $180, ¿cuál fue su costo?",
		Options:       []string{"$144", "$150", "$160", "$165"},
		Correct:       "$150",
		Explanation:   "Precio de venta = Costo × 1.20 = $180. Costo = $180 ÷ 1.20 = $150",
		Subject:       Arithmetic,
		Visualization: "percentage",
	},
}
