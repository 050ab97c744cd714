// Package question resolves (topic, pool index) pairs into immutable
// multiple-choice question records. Resolution is deterministic: the pool
// index is the only entropy consumer, so the same slot always yields the
// same question.
package question

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/mbuckley/feprep/internal/topic"
)

// Engine is the built-in content engine. It derives a stable seed from
// (topic, pool index) and expands it through per-topic template families.
type Engine struct{}

// NewEngine returns the deterministic content engine.
func NewEngine() *Engine {
	return &Engine{}
}

var _ Resolver = (*Engine)(nil)

// Resolve returns the question for the given topic and pool index.
// Indices must come from a valid permutation of 1..PoolSize; anything
// else is a caller bug and panics.
func (e *Engine) Resolve(t topic.Topic, poolIndex int) Question {
	if poolIndex < 1 || poolIndex > PoolSize {
		panic(fmt.Sprintf("question: pool index %d outside [1, %d]", poolIndex, PoolSize))
	}

	rng := rand.New(rand.NewPCG(seed(t, poolIndex), uint64(poolIndex)))

	var d draft
	switch t {
	case topic.Statics:
		d = staticsTemplates[rng.IntN(len(staticsTemplates))](rng)
	case topic.Circuits:
		d = circuitTemplates[rng.IntN(len(circuitTemplates))](rng)
	case topic.Thermodynamics:
		d = thermoTemplates[rng.IntN(len(thermoTemplates))](rng)
	case topic.Fluids:
		d = fluidTemplates[rng.IntN(len(fluidTemplates))](rng)
	case topic.Materials:
		d = materialTemplates[rng.IntN(len(materialTemplates))](rng)
	case topic.Ethics:
		d = ethicsBank[rng.IntN(len(ethicsBank))]
	default:
		panic(fmt.Sprintf("question: unknown topic %q", t))
	}

	return assemble(t, poolIndex, rng, d)
}

// seed derives the stable 64-bit seed for a pool slot.
func seed(t topic.Topic, poolIndex int) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s#%d", t, poolIndex)
	return h.Sum64()
}

// draft is a question before options are keyed and shuffled.
type draft struct {
	prompt      string
	answer      string
	distractors [3]string
	explanation string
	kind        Kind
	citation    string
}

// assemble shuffles the four option texts into keyed slots and fills in
// identity fields. The shuffle consumes the slot's rng, so key placement
// is as stable as the rest of the question.
func assemble(t topic.Topic, poolIndex int, rng *rand.Rand, d draft) Question {
	texts := []string{d.answer, d.distractors[0], d.distractors[1], d.distractors[2]}
	order := rng.Perm(len(texts))

	options := make(map[string]string, len(OptionKeys))
	correctKey := ""
	for slot, src := range order {
		key := OptionKeys[slot]
		options[key] = texts[src]
		if src == 0 {
			correctKey = key
		}
	}

	return Question{
		ID:               fmt.Sprintf("%s-%03d", t, poolIndex),
		Topic:            t,
		Prompt:           d.prompt,
		Options:          options,
		CorrectKey:       correctKey,
		Explanation:      d.explanation,
		Kind:             d.kind,
		RequiresCitation: d.citation != "",
		Citation:         d.citation,
	}
}

type template func(rng *rand.Rand) draft

var staticsTemplates = []template{
	// Resultant of two perpendicular forces.
	func(rng *rand.Rand) draft {
		fx := float64(30 + 10*rng.IntN(25))
		fy := float64(30 + 10*rng.IntN(25))
		r := math.Hypot(fx, fy)
		return quantDraft(
			fmt.Sprintf("Two perpendicular forces of %.0f N and %.0f N act at a point. What is the magnitude of the resultant?", fx, fy),
			r, "N",
			fmt.Sprintf("R = sqrt(Fx^2 + Fy^2) = sqrt(%.0f^2 + %.0f^2) = %s N.", fx, fy, fmtNum(r)),
		)
	},
	// Moment of a force about a point.
	func(rng *rand.Rand) draft {
		f := float64(50 + 25*rng.IntN(20))
		d := 0.5 + 0.25*float64(rng.IntN(10))
		m := f * d
		return quantDraft(
			fmt.Sprintf("A %.0f N force acts perpendicular to a lever arm %.2f m from the pivot. What is the moment about the pivot?", f, d),
			m, "N·m",
			fmt.Sprintf("M = F·d = %.0f × %.2f = %s N·m.", f, d, fmtNum(m)),
		)
	},
	// Equilibrium reaction on a simply supported beam, point load at midspan.
	func(rng *rand.Rand) draft {
		w := float64(200 + 100*rng.IntN(15))
		return quantDraft(
			fmt.Sprintf("A simply supported beam carries a single %.0f N load at midspan. What is the reaction at each support?", w),
			w/2, "N",
			fmt.Sprintf("Symmetry puts half the load on each support: %.0f / 2 = %s N.", w, fmtNum(w/2)),
		)
	},
	// Two-force member, qualitative.
	func(*rand.Rand) draft {
		return draft{
			prompt:      "A two-force member in equilibrium carries forces that are:",
			answer:      "Equal, opposite, and collinear",
			distractors: [3]string{"Equal and perpendicular", "Proportional to the member's length", "Concurrent at the member's centroid"},
			explanation: "With only two points of load application, equilibrium requires the forces to be equal, opposite, and directed along the line joining the two points.",
			kind:        KindConceptual,
		}
	},
}

var circuitTemplates = []template{
	// Ohm's law for current.
	func(rng *rand.Rand) draft {
		v := float64(6 + 6*rng.IntN(20))
		r := float64(10 + 10*rng.IntN(20))
		i := v / r
		return quantDraft(
			fmt.Sprintf("A %.0f V source drives a %.0f Ω resistor. What is the current?", v, r),
			i, "A",
			fmt.Sprintf("I = V/R = %.0f / %.0f = %s A.", v, r, fmtNum(i)),
		)
	},
	// Series equivalent resistance.
	func(rng *rand.Rand) draft {
		r1 := float64(10 + 5*rng.IntN(18))
		r2 := float64(10 + 5*rng.IntN(18))
		r3 := float64(10 + 5*rng.IntN(18))
		return quantDraft(
			fmt.Sprintf("Resistors of %.0f Ω, %.0f Ω, and %.0f Ω are connected in series. What is the equivalent resistance?", r1, r2, r3),
			r1+r2+r3, "Ω",
			fmt.Sprintf("Series resistances add: %.0f + %.0f + %.0f = %s Ω.", r1, r2, r3, fmtNum(r1+r2+r3)),
		)
	},
	// Power dissipation.
	func(rng *rand.Rand) draft {
		v := float64(12 + 12*rng.IntN(10))
		i := 0.5 + 0.5*float64(rng.IntN(8))
		return quantDraft(
			fmt.Sprintf("A device draws %.1f A from a %.0f V supply. What power does it dissipate?", i, v),
			v*i, "W",
			fmt.Sprintf("P = V·I = %.0f × %.1f = %s W.", v, i, fmtNum(v*i)),
		)
	},
	// Series-circuit invariant, qualitative.
	func(*rand.Rand) draft {
		return draft{
			prompt:      "In a series circuit, which quantity is the same through every element?",
			answer:      "Current",
			distractors: [3]string{"Voltage", "Power", "Resistance"},
			explanation: "A series circuit has a single path, so the same current flows through every element; voltage and power divide among them.",
			kind:        KindConceptual,
		}
	},
}

var thermoTemplates = []template{
	// Carnot efficiency.
	func(rng *rand.Rand) draft {
		tc := float64(280 + 10*rng.IntN(6))
		th := float64(500 + 50*rng.IntN(10))
		eta := (1 - tc/th) * 100
		return quantDraft(
			fmt.Sprintf("A Carnot engine operates between reservoirs at %.0f K and %.0f K. What is its thermal efficiency?", th, tc),
			eta, "%",
			fmt.Sprintf("η = 1 − Tc/Th = 1 − %.0f/%.0f = %s%%.", tc, th, fmtNum(eta)),
		)
	},
	// Sensible heating of water.
	func(rng *rand.Rand) draft {
		m := float64(1 + rng.IntN(9))
		dt := float64(10 + 5*rng.IntN(10))
		q := m * 4.18 * dt
		return quantDraft(
			fmt.Sprintf("How much energy is needed to raise %.0f kg of water (c = 4.18 kJ/kg·K) by %.0f K?", m, dt),
			q, "kJ",
			fmt.Sprintf("Q = m·c·ΔT = %.0f × 4.18 × %.0f = %s kJ.", m, dt, fmtNum(q)),
		)
	},
	// Process classification, qualitative.
	func(*rand.Rand) draft {
		return draft{
			prompt:      "Which thermodynamic process involves no heat transfer across the system boundary?",
			answer:      "Adiabatic",
			distractors: [3]string{"Isothermal", "Isobaric", "Isochoric"},
			explanation: "An adiabatic process has Q = 0; isothermal holds temperature constant, which generally requires heat transfer.",
			kind:        KindConceptual,
		}
	},
}

var fluidTemplates = []template{
	// Hydrostatic gauge pressure.
	func(rng *rand.Rand) draft {
		h := float64(2 + rng.IntN(18))
		p := 1000 * 9.81 * h / 1000 // kPa
		return quantDraft(
			fmt.Sprintf("What is the gauge pressure at a depth of %.0f m in fresh water (ρ = 1000 kg/m³, g = 9.81 m/s²)?", h),
			p, "kPa",
			fmt.Sprintf("p = ρ·g·h = 1000 × 9.81 × %.0f = %s kPa.", h, fmtNum(p)),
		)
	},
	// Volumetric flow rate through a pipe.
	func(rng *rand.Rand) draft {
		d := 0.05 + 0.05*float64(rng.IntN(6))
		v := 1 + 0.5*float64(rng.IntN(8))
		a := math.Pi * d * d / 4
		q := a * v
		return quantDraft(
			fmt.Sprintf("Water flows at %.1f m/s through a pipe of %.2f m diameter. What is the volumetric flow rate?", v, d),
			q, "m³/s",
			fmt.Sprintf("Q = A·v = π·(%.2f)²/4 × %.1f = %s m³/s.", d, v, fmtNum(q)),
		)
	},
	// Continuity in a converging duct, qualitative.
	func(*rand.Rand) draft {
		return draft{
			prompt:      "For steady incompressible flow through a converging duct, the fluid velocity:",
			answer:      "Increases as the cross-section shrinks",
			distractors: [3]string{"Decreases as the cross-section shrinks", "Stays constant along the duct", "Depends only on the fluid's viscosity"},
			explanation: "Continuity (A·v constant) forces velocity up wherever the flow area goes down.",
			kind:        KindConceptual,
		}
	},
}

var materialTemplates = []template{
	// Normal stress in a bar.
	func(rng *rand.Rand) draft {
		f := float64(10 + 10*rng.IntN(20)) // kN
		a := float64(100 + 50*rng.IntN(10))
		s := f * 1000 / a // MPa (kN over mm²)
		return quantDraft(
			fmt.Sprintf("A bar of %.0f mm² cross-section carries an axial load of %.0f kN. What is the normal stress?", a, f),
			s, "MPa",
			fmt.Sprintf("σ = F/A = %.0f×10³ N / %.0f mm² = %s MPa.", f, a, fmtNum(s)),
		)
	},
	// Axial strain.
	func(rng *rand.Rand) draft {
		l := float64(500 + 100*rng.IntN(10))
		dl := 0.2 + 0.1*float64(rng.IntN(10))
		eps := dl / l * 1000 // millistrain
		return quantDraft(
			fmt.Sprintf("A %.0f mm member elongates %.1f mm under load. What is the axial strain, in millistrain?", l, dl),
			eps, "mε",
			fmt.Sprintf("ε = ΔL/L = %.1f / %.0f = %s mε.", dl, l, fmtNum(eps)),
		)
	},
	// Energy-absorption properties, qualitative.
	func(*rand.Rand) draft {
		return draft{
			prompt:      "Which property measures the total energy a material absorbs up to fracture?",
			answer:      "Toughness",
			distractors: [3]string{"Resilience", "Hardness", "Stiffness"},
			explanation: "Toughness is the area under the full stress-strain curve; resilience counts only the elastic portion.",
			kind:        KindConceptual,
		}
	},
}

// ethicsBank is a fixed set of code-lookup scenarios; unlike the numeric
// templates these are not parameterized, only selected and shuffled.
var ethicsBank = []draft{
	{
		prompt:      "An engineer discovers a design flaw that could endanger the public after the client has accepted the design. What must the engineer do first?",
		answer:      "Notify the client and, if not corrected, the appropriate authority",
		distractors: [3]string{"Nothing; the design was formally accepted", "Quietly fix it in the next revision", "Report it only to their own employer"},
		explanation: "Engineers must hold paramount the safety, health, and welfare of the public, which overrides client acceptance.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(a)(1)",
	},
	{
		prompt:      "A licensed engineer is asked to seal drawings prepared by an unlicensed firm they did not supervise. The engineer should:",
		answer:      "Decline; sealing work not performed under their responsible charge is prohibited",
		distractors: [3]string{"Seal them after a brief review", "Seal them if the firm carries liability insurance", "Seal them and attach a disclaimer"},
		explanation: "Plan stamping — sealing work not done under one's responsible charge — is prohibited regardless of review depth.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(b)(2)",
	},
	{
		prompt:      "An engineer receives a gift of substantial value from a vendor bidding on a project the engineer will evaluate. The engineer should:",
		answer:      "Refuse the gift to avoid a conflict of interest",
		distractors: [3]string{"Accept it if disclosed to the vendor", "Accept it after the bid closes", "Accept it if all bidders offer gifts"},
		explanation: "Accepting valuable consideration from parties with an interest in one's professional decisions is a conflict of interest.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(c)(4)",
	},
	{
		prompt:      "An engineer is asked to perform work in a discipline in which they have no training or experience. The engineer should:",
		answer:      "Decline or associate with a qualified engineer in that discipline",
		distractors: [3]string{"Accept; a license covers all disciplines", "Accept and learn on the job", "Accept if the client waives liability"},
		explanation: "Engineers may practice only in areas of their competence; outside work requires a qualified associate.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(a)(3)",
	},
	{
		prompt:      "During a dispute, a client asks an engineer to withhold unfavorable test data from a public filing. The engineer should:",
		answer:      "Refuse; reports must include all relevant and pertinent information",
		distractors: [3]string{"Comply; the client owns the data", "Comply but keep a private copy", "Summarize the data so it is less visible"},
		explanation: "Professional reports must be objective and truthful and include all relevant and pertinent information.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(a)(2)",
	},
	{
		prompt:      "An engineer reviewing a competitor's public proposal finds an error. The most ethical course is to:",
		answer:      "Notify the competitor and the reviewing body factually and without disparagement",
		distractors: [3]string{"Publicize the error to win the contract", "Ignore it; competitors owe each other nothing", "Anonymously leak it to the press"},
		explanation: "Engineers must not falsely or maliciously injure the reputation of others; factual notification through proper channels is required.",
		kind:        KindCodeLookup,
		citation:    "NCEES Model Rules 240.15(c)(1)",
	},
}

// quantDraft builds a quantitative draft with perturbation distractors.
func quantDraft(prompt string, value float64, unit, explanation string) draft {
	return draft{
		prompt: prompt,
		answer: fmtNum(value) + " " + unit,
		distractors: [3]string{
			fmtNum(value/2) + " " + unit,
			fmtNum(value*2) + " " + unit,
			fmtNum(value*1.25) + " " + unit,
		},
		explanation: explanation,
		kind:        KindQuantitative,
	}
}

// fmtNum renders a value to four significant figures. Fixed-decimal
// rounding collapses small values; significant figures keep the answer
// and its perturbation distractors distinct at every magnitude.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
