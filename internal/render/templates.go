package render

// DefaultTemplateID selects the generic fragment used for unknown template ids.
const DefaultTemplateID = "default"

// HeroImageTemplateID is the image-above-text hero whose config is nested.
const HeroImageTemplateID = "hero-1"

var fragments = map[string]string{
	"menu-1": `<nav class="bg-white shadow-md p-4"><div class="container mx-auto flex justify-between items-center"><div class="text-2xl font-bold">{{brandName}}</div><div class="space-x-4">{{menuItems}}</div></div></nav>`,
	"menu-2": `<nav class="bg-gray-900 text-white p-4"><div class="container mx-auto flex justify-center items-center gap-8"><div class="text-xl font-bold">{{brandName}}</div><div class="space-x-6">{{menuItems}}</div></div></nav>`,
	"menu-3": `<nav class="bg-transparent absolute w-full p-4 z-10"><div class="container mx-auto flex justify-between items-center"><div class="text-2xl font-bold text-white">{{brandName}}</div><div class="space-x-4 text-white">{{menuItems}}</div></div></nav>`,
	"menu-4": `<nav class="bg-gradient-to-r from-purple-600 to-indigo-600 text-white p-4"><div class="container mx-auto"><div class="text-2xl font-bold mb-4">{{brandName}}</div><div class="space-y-2">{{menuItems}}</div></div></nav>`,
	"menu-5": `<nav class="bg-white border-b p-4"><div class="container mx-auto grid grid-cols-2 gap-8"><div><div class="font-bold mb-2">{{brandName}}</div></div><div class="text-right">{{menuItems}}</div></div></nav>`,
	"menu-6": `<nav class="bg-gray-900 text-white p-6"><div class="container mx-auto flex justify-between items-center"><div class="text-xl tracking-wider">{{brandName}}</div><div class="space-x-8 text-sm uppercase">{{menuItems}}</div></div></nav>`,

	"hero-1":  `<section class="py-20 px-4" style="background-color: {{backgroundColor}}"><div class="container mx-auto" style="max-width: 1000px;"><div class="mb-12 rounded-xl overflow-hidden shadow-2xl"><img src="{{heroImage}}" alt="Hero image" style="width: 100%; height: 600px; object-fit: cover; display: block;"></div><div class="text-center"><h1 class="text-6xl font-bold mb-6" style="color: {{titleColor}}">{{title}}</h1><p class="text-xl mb-8" style="color: {{descriptionColor}}">{{description}}</p><button class="px-10 py-4 rounded-xl text-lg font-semibold transition-all hover:scale-105 shadow-lg" style="background-color: {{buttonBg}}; color: {{buttonColor}}">{{buttonText}}</button></div></div></section>`,
	"hero-2":  `<section class="relative h-screen flex items-center justify-center bg-gradient-to-r from-pink-500 to-orange-500 text-white"><div class="text-center z-10 px-4"><h1 class="text-7xl font-extrabold mb-6">{{headline}}</h1><p class="text-3xl mb-8">{{subheadline}}</p><button class="bg-white text-pink-600 px-10 py-5 rounded-lg text-xl font-bold hover:scale-105 transition">{{ctaText}}</button></div></section>`,
	"hero-3":  `<section class="relative h-screen flex items-center justify-center bg-black text-white"><video autoplay muted loop class="absolute inset-0 w-full h-full object-cover opacity-50"><source src="video.mp4" type="video/mp4"></video><div class="text-center z-10 px-4"><h1 class="text-6xl font-bold mb-6">{{headline}}</h1><p class="text-2xl mb-8">{{subheadline}}</p><button class="border-2 border-white px-8 py-4 rounded-full text-lg font-semibold hover:bg-white hover:text-black transition">{{ctaText}}</button></div></section>`,
	"hero-4":  `<section class="relative h-screen flex items-center justify-center bg-cover bg-center" style="background-image: url({{backgroundImage}});"><div class="absolute inset-0 bg-black opacity-40"></div><div class="text-center z-10 px-4 text-white"><h1 class="text-6xl font-bold mb-6">{{headline}}</h1><p class="text-2xl mb-8">{{subheadline}}</p><button class="bg-indigo-600 text-white px-8 py-4 rounded-lg text-lg font-semibold hover:bg-indigo-700 transition">{{ctaText}}</button></div></section>`,
	"hero-5":  `<section class="relative h-screen flex items-center justify-center overflow-hidden"><div class="absolute inset-0 bg-gradient-to-r from-blue-500 via-purple-500 to-pink-500 animate-gradient"></div><div class="text-center z-10 px-4 text-white"><h1 class="text-7xl font-extrabold mb-6">{{headline}}</h1><p class="text-3xl mb-8">{{subheadline}}</p><button class="bg-white text-purple-600 px-10 py-5 rounded-full text-xl font-bold hover:scale-110 transition">{{ctaText}}</button></div></section>`,
	"hero-6":  `<section class="h-screen grid grid-cols-2"><div class="flex items-center justify-center bg-indigo-600 text-white p-12"><div><h1 class="text-5xl font-bold mb-6">{{headline}}</h1><p class="text-xl mb-8">{{subheadline}}</p><button class="bg-white text-indigo-600 px-8 py-4 rounded-lg text-lg font-semibold hover:bg-gray-100 transition">{{ctaText}}</button></div></div><div class="bg-cover bg-center" style="background-image: url({{backgroundImage}});"></div></section>`,
	"hero-7":  `<section class="h-screen flex items-center justify-center bg-white"><div class="text-center px-4"><h1 class="text-6xl font-light text-gray-900 mb-6">{{headline}}</h1><p class="text-xl text-gray-600 mb-8 max-w-2xl mx-auto">{{subheadline}}</p><button class="bg-black text-white px-8 py-4 rounded text-lg hover:bg-gray-800 transition">{{ctaText}}</button></div></section>`,
	"hero-8":  `<section class="h-screen flex items-center justify-center bg-gray-900 text-white"><div class="text-center px-4"><h1 class="text-8xl font-black mb-6 uppercase">{{headline}}</h1><p class="text-2xl mb-8">{{subheadline}}</p><button class="bg-red-600 text-white px-12 py-5 rounded text-xl font-bold hover:bg-red-700 transition">{{ctaText}}</button></div></section>`,
	"hero-9":  `<section class="relative h-screen flex items-center justify-center bg-cover bg-center" style="background-image: url({{backgroundImage}});"><div class="absolute inset-0 bg-gradient-to-b from-transparent to-black opacity-70"></div><div class="text-center z-10 px-4 text-white"><h1 class="text-6xl font-bold mb-6">{{headline}}</h1><p class="text-2xl mb-8">{{subheadline}}</p><button class="bg-yellow-500 text-black px-8 py-4 rounded-full text-lg font-bold hover:bg-yellow-400 transition">{{ctaText}}</button></div></section>`,
	"hero-10": `<section class="h-screen flex items-center justify-center bg-gradient-to-br from-teal-500 to-blue-600 text-white"><div class="text-center px-4"><h1 class="text-6xl font-bold mb-6">{{headline}}</h1><p class="text-2xl mb-8">{{subheadline}}</p><div class="flex gap-4 justify-center"><button class="bg-white text-teal-600 px-8 py-4 rounded-lg text-lg font-semibold hover:bg-gray-100 transition">{{ctaText}}</button><button class="border-2 border-white px-8 py-4 rounded-lg text-lg font-semibold hover:bg-white hover:text-teal-600 transition">Learn More</button></div></div></section>`,

	DefaultTemplateID: `<section class="py-20 px-4"><div class="container mx-auto"><div class="text-center">{{content}}</div></div></section>`,
}

// rawFields lists config keys whose values are markup rather than text.
// They are rendered as Markdown and sanitised instead of escaped.
var rawFields = map[string]map[string]bool{
	DefaultTemplateID: {"content": true},
}

// TemplateIDs returns the ids of every known fragment.
func TemplateIDs() []string {
	ids := make([]string, 0, len(fragments))
	for id := range fragments {
		ids = append(ids, id)
	}
	return ids
}

const documentHead = `<!DOCTYPE html>
<html lang="ro">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Site creat cu Mobirise Builder</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
        }
        @keyframes gradient {
            0% { background-position: 0% 50%; }
            50% { background-position: 100% 50%; }
            100% { background-position: 0% 50%; }
        }
        .animate-gradient {
            background-size: 200% 200%;
            animation: gradient 15s ease infinite;
        }
    </style>
</head>
<body>
    `

const documentTail = `
</body>
</html>`
